package wire

import (
	"testing"
	"time"

	"github.com/fieldtrack/syncserver/models"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func fixtureDevice() models.Device {
	return models.Device{
		DeviceID:   "device-123",
		Username:   "chw1",
		Password:   "$2a$10$secret",
		DateJoined: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		UserData:   map[string]string{"language": "fr", "district": "north"},
	}
}

func TestGoldenCaseV1(t *testing.T) {
	g := goldie.New(t)

	out, err := CaseXML(fixtureCase(), []models.ActionKind{models.ActionCreate, models.ActionUpdate}, V1)
	require.NoError(t, err)
	g.Assert(t, "case_v1", out)
}

func TestGoldenCaseV2Close(t *testing.T) {
	g := goldie.New(t)

	out, err := CaseXML(fixtureCase(), []models.ActionKind{models.ActionUpdate, models.ActionClose}, V2)
	require.NoError(t, err)
	g.Assert(t, "case_v2_close", out)
}

func TestGoldenRestorePayload(t *testing.T) {
	g := goldie.New(t)

	root := SyncElement("log-1")
	root.AddChild(RegistrationElement(fixtureDevice()))

	caseEl, err := CaseElement(fixtureCase(), []models.ActionKind{models.ActionCreate, models.ActionUpdate}, V2)
	require.NoError(t, err)
	root.AddChild(caseEl)

	out, err := Serialize(root)
	require.NoError(t, err)
	g.Assert(t, "restore", out)
}
