package mdns

import (
	"context"
	"testing"
	"time"

	"github.com/dnsscience/simpledns/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResponder() *Responder {
	cfg := DefaultConfig()
	cfg.ProbeInterval = time.Millisecond
	cfg.CacheSweepEvery = time.Hour
	return NewResponder(&Conn{}, cfg, nil)
}

func TestResponderRegisterEstablishesWithoutConflict(t *testing.T) {
	r := newTestResponder()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)
	defer r.Close()

	svc := Service{InstanceName: "My Printer", ServiceType: "_ipp._tcp", Domain: "local", Port: 631}
	recordsFn := func(s Service) []dns.ResourceRecord {
		name := mustName(t, s.QualifiedInstance())
		return []dns.ResourceRecord{{Name: name, Class: dns.ClassIN, TTL: 120, RData: dns.A{Address: [4]byte{10, 0, 0, 5}}}}
	}

	registerCtx, registerCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer registerCancel()
	err := r.Register(registerCtx, svc, recordsFn)
	require.NoError(t, err)
}

func TestResponderCacheAndBusAccessors(t *testing.T) {
	r := newTestResponder()
	assert.NotNil(t, r.Cache())
	assert.NotNil(t, r.Bus())
}

func TestResponderCloseIsIdempotent(t *testing.T) {
	r := newTestResponder()
	r.Close()
	r.Close() // must not panic
}
