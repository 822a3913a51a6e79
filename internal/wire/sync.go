package wire

import (
	"sort"

	"github.com/beevik/etree"
	"github.com/fieldtrack/syncserver/models"
)

// Namespaces of the sync envelope and the registration element. These are
// deployed protocol constants.
const (
	SyncXMLNS         = "http://fieldtrack.io/sync"
	RegistrationXMLNS = "http://openrosa.org/user/registration"
)

// SyncElement builds the response envelope carrying the restore id (the new
// sync log's identifier). Per-case elements and, on first contact, the
// registration element are appended to it by the caller.
func SyncElement(restoreID string) *etree.Element {
	root := etree.NewElement("Sync")
	root.CreateAttr("xmlns", SyncXMLNS)
	root.CreateElement("restore_id").SetText(restoreID)
	return root
}

// RegistrationElement builds the device enrollment element sent on first
// contact: device identity plus, when present, the flattened key/value
// metadata block. Registration is not protocol-versioned.
func RegistrationElement(device models.Device) *etree.Element {
	root := etree.NewElement("Registration")
	root.CreateAttr("xmlns", RegistrationXMLNS)
	root.CreateElement("username").SetText(device.Username)
	root.CreateElement("password").SetText(device.Password)
	root.CreateElement("uuid").SetText(device.DeviceID)
	root.CreateElement("date").SetText(device.DateJoined.UTC().Format(dateFormat))
	if len(device.UserData) > 0 {
		root.AddChild(userDataElement(device.UserData))
	}
	return root
}

func userDataElement(userData map[string]string) *etree.Element {
	el := etree.NewElement("user_data")

	keys := make([]string, 0, len(userData))
	for k := range userData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		data := el.CreateElement("data")
		data.CreateAttr("key", k)
		data.SetText(userData[k])
	}
	return el
}

// Serialize writes an element tree to UTF-8 bytes with an XML declaration.
func Serialize(el *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(el)
	return doc.WriteToBytes()
}
