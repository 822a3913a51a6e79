package wire

import (
	"github.com/beevik/etree"
	"github.com/fieldtrack/syncserver/models"
)

// v1Generator renders the original wire format: identifying fields are child
// elements of the case root, and the create block uses the legacy
// case_type_id / user_id names.
type v1Generator struct {
	c models.Case
}

func (g *v1Generator) root() *etree.Element {
	root := etree.NewElement("case")
	root.CreateElement("case_id").SetText(g.c.CaseID)
	root.CreateElement("date_modified").SetText(g.c.ModifiedOn.UTC().Format(timestampFormat))
	return root
}

func (g *v1Generator) createElement() *etree.Element {
	return etree.NewElement("create")
}

func (g *v1Generator) updateElement() *etree.Element {
	return etree.NewElement("update")
}

func (g *v1Generator) closeElement() *etree.Element {
	return etree.NewElement("close")
}

func (g *v1Generator) addBaseProperties(block *etree.Element) {
	block.CreateElement("case_type_id").SetText(g.c.Type)
	block.CreateElement("case_name").SetText(g.c.Name)
	block.CreateElement("user_id").SetText(g.c.UserID)
	if g.c.ExternalID != "" {
		block.CreateElement("external_id").SetText(g.c.ExternalID)
	}
}

func (g *v1Generator) addCustomProperties(block *etree.Element) {
	addPropertyElements(block, g.c.Properties)
}

func (g *v1Generator) addIndices(root *etree.Element) {
	addIndexBlock(root, g.c)
}

func (g *v1Generator) addReferrals(root *etree.Element) {
	addReferralBlocks(root, g.c)
}
