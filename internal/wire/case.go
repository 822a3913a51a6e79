package wire

import (
	"github.com/beevik/etree"
	"github.com/fieldtrack/syncserver/models"
)

// CaseElement builds the case transaction element for one case and its
// pending action kinds, in the negotiated protocol version.
//
// Block gating rules, stable across versions:
//   - Create carries the base identifying properties.
//   - Update repeats the base properties when no Create block is present
//     (a device may receive an update for a case created in an earlier
//     session) and carries the dynamic properties; the block is attached
//     only when it has content.
//   - Index relations are emitted whenever an Update is (index emission is
//     deliberately tied to update presence, not to an index action: changing
//     that would alter the wire contract for deployed clients).
//   - Close (or Purge) emits the close block and suppresses referrals;
//     a closing case has no follow-ups left to refresh.
func CaseElement(c models.Case, kinds []models.ActionKind, version string) (*etree.Element, error) {
	if err := CheckVersion(version); err != nil {
		return nil, err
	}

	generator, err := generatorFor(version, c)
	if err != nil {
		return nil, err
	}
	root := generator.root()

	doCreate := hasKind(kinds, models.ActionCreate)
	doUpdate := hasKind(kinds, models.ActionUpdate)
	doIndex := doUpdate
	doClose := hasKind(kinds, models.ActionClose) || hasKind(kinds, models.ActionPurge)

	if doCreate {
		createBlock := generator.createElement()
		generator.addBaseProperties(createBlock)
		root.AddChild(createBlock)
	}

	if doUpdate {
		updateBlock := generator.updateElement()
		if !doCreate {
			generator.addBaseProperties(updateBlock)
		}
		generator.addCustomProperties(updateBlock)
		if len(updateBlock.ChildElements()) > 0 {
			root.AddChild(updateBlock)
		}
	}

	if doIndex {
		generator.addIndices(root)
	}

	if doClose {
		root.AddChild(generator.closeElement())
	}

	if !doClose {
		generator.addReferrals(root)
	}

	return root, nil
}

// CaseXML renders the case element straight to UTF-8 bytes.
func CaseXML(c models.Case, kinds []models.ActionKind, version string) ([]byte, error) {
	el, err := CaseElement(c, kinds, version)
	if err != nil {
		return nil, err
	}
	return Serialize(el)
}

func hasKind(kinds []models.ActionKind, kind models.ActionKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
