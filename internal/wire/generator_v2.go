package wire

import (
	"github.com/beevik/etree"
	"github.com/fieldtrack/syncserver/models"
)

// CaseXMLNSV2 is the namespace of version 2.0 case transaction elements.
const CaseXMLNSV2 = "http://fieldtrack.io/case/transaction/v2"

// v2Generator renders the current wire format: identifying fields live as
// attributes on the case root, and the create block carries owner_id instead
// of the submitting user.
type v2Generator struct {
	c models.Case
}

func (g *v2Generator) root() *etree.Element {
	root := etree.NewElement("case")
	root.CreateAttr("xmlns", CaseXMLNSV2)
	root.CreateAttr("case_id", g.c.CaseID)
	root.CreateAttr("user_id", g.c.UserID)
	root.CreateAttr("date_modified", g.c.ModifiedOn.UTC().Format(timestampFormat))
	return root
}

func (g *v2Generator) createElement() *etree.Element {
	return etree.NewElement("create")
}

func (g *v2Generator) updateElement() *etree.Element {
	return etree.NewElement("update")
}

func (g *v2Generator) closeElement() *etree.Element {
	return etree.NewElement("close")
}

func (g *v2Generator) addBaseProperties(block *etree.Element) {
	block.CreateElement("case_type").SetText(g.c.Type)
	block.CreateElement("case_name").SetText(g.c.Name)
	block.CreateElement("owner_id").SetText(g.c.OwnerOrUserID())
}

func (g *v2Generator) addCustomProperties(block *etree.Element) {
	addPropertyElements(block, g.c.Properties)
}

func (g *v2Generator) addIndices(root *etree.Element) {
	addIndexBlock(root, g.c)
}

func (g *v2Generator) addReferrals(root *etree.Element) {
	addReferralBlocks(root, g.c)
}
