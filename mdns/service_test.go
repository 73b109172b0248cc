package mdns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceValidate(t *testing.T) {
	svc := Service{InstanceName: "My Printer", ServiceType: "_http._tcp", Domain: "local", Port: 80}
	require.NoError(t, svc.Validate())

	bad := svc
	bad.InstanceName = ""
	assert.ErrorIs(t, bad.Validate(), ErrInvalidService)

	bad = svc
	bad.ServiceType = "http-tcp"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidService)

	bad = svc
	bad.Port = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidService)

	bad = svc
	bad.Domain = ""
	assert.ErrorIs(t, bad.Validate(), ErrInvalidService)
}

func TestServiceValidateTXTTooLarge(t *testing.T) {
	txt := make(map[string]string)
	for i := 0; i < 200; i++ {
		txt[string(rune('a'+i%26))+string(rune(i))] = "0123456789"
	}
	svc := Service{InstanceName: "X", ServiceType: "_http._tcp", Domain: "local", Port: 1, TXT: txt}
	assert.ErrorIs(t, svc.Validate(), ErrInvalidService)
}

func TestServiceRename(t *testing.T) {
	svc := Service{InstanceName: "My Service"}
	svc.Rename()
	assert.Equal(t, "My Service-2", svc.InstanceName)
	svc.Rename()
	assert.Equal(t, "My Service-3", svc.InstanceName)

	svc2 := Service{InstanceName: "Printer-10"}
	svc2.Rename()
	assert.Equal(t, "Printer-11", svc2.InstanceName)
}

func TestServiceRenameTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 62; i++ {
		long += "a"
	}
	svc := Service{InstanceName: long}
	svc.Rename()
	assert.LessOrEqual(t, len(svc.InstanceName), 63)
	assert.Contains(t, svc.InstanceName, "-2")
}

func TestQualifiedInstance(t *testing.T) {
	svc := Service{InstanceName: "My Printer", ServiceType: "_ipp._tcp", Domain: "local"}
	assert.Equal(t, "My Printer._ipp._tcp.local", svc.QualifiedInstance())
	assert.Equal(t, "_ipp._tcp.local", svc.ServiceTypeName())
}
