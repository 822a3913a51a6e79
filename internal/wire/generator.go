package wire

import (
	"sort"
	"time"

	"github.com/beevik/etree"
	"github.com/fieldtrack/syncserver/models"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = time.RFC3339
)

// caseGenerator builds the version-specific pieces of one case element.
// Block assembly order and gating live in [CaseElement]; generators only know
// element and attribute naming for their version.
type caseGenerator interface {
	root() *etree.Element
	createElement() *etree.Element
	updateElement() *etree.Element
	closeElement() *etree.Element
	addBaseProperties(block *etree.Element)
	addCustomProperties(block *etree.Element)
	addIndices(root *etree.Element)
	addReferrals(root *etree.Element)
}

func generatorFor(version string, c models.Case) (caseGenerator, error) {
	if err := CheckVersion(version); err != nil {
		return nil, err
	}

	switch version {
	case V1:
		return &v1Generator{c: c}, nil
	default:
		return &v2Generator{c: c}, nil
	}
}

// addIndexBlock emits the index relations block shared by both versions:
//
//	<index><parent case_type="household">hh-1</parent></index>
//
// Children are sorted by index name so output is deterministic.
func addIndexBlock(root *etree.Element, c models.Case) {
	if len(c.Indices) == 0 {
		return
	}

	indices := make([]models.CaseIndex, len(c.Indices))
	copy(indices, c.Indices)
	sort.Slice(indices, func(i, j int) bool { return indices[i].Name < indices[j].Name })

	block := root.CreateElement("index")
	for _, idx := range indices {
		ref := block.CreateElement(idx.Name)
		ref.CreateAttr("case_type", idx.ReferencedType)
		ref.SetText(idx.ReferencedID)
	}
}

// addReferralBlocks emits one referral element per open follow-up item.
// Closed referrals have nothing left to refresh on the device.
func addReferralBlocks(root *etree.Element, c models.Case) {
	for _, ref := range c.Referrals {
		if ref.Closed {
			continue
		}

		block := root.CreateElement("referral")
		block.CreateElement("referral_id").SetText(ref.ReferralID)
		if ref.FollowupOn != nil {
			block.CreateElement("followup_date").SetText(ref.FollowupOn.Format(dateFormat))
		}
		open := block.CreateElement("open")
		open.CreateElement("referral_types").SetText(ref.Type)
	}
}

// addPropertyElements emits the dynamic case properties in key order. Values
// with attribute metadata render the attributes on the property element.
func addPropertyElements(block *etree.Element, properties map[string]models.CaseValue) {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := properties[key]
		el := block.CreateElement(key)

		attrNames := make([]string, 0, len(value.Attrs))
		for name := range value.Attrs {
			attrNames = append(attrNames, name)
		}
		sort.Strings(attrNames)
		for _, name := range attrNames {
			el.CreateAttr(name, value.Attrs[name])
		}

		el.SetText(value.Text)
	}
}
