package mdns

import (
	"context"
	"time"

	"github.com/dnsscience/simpledns/dns"
)

// Announcer implements RFC 6762 §8.3's announcing sequence: send at
// least two unsolicited multicast responses, one second apart,
// carrying every record the probe round just claimed.
type Announcer struct {
	Send     SendFunc
	Interval time.Duration
	Count    int
}

// NewAnnouncer creates an Announcer sending through send at RFC
// 6762's default one-announcement-per-second cadence, twice.
func NewAnnouncer(send SendFunc) *Announcer {
	return &Announcer{Send: send, Interval: time.Second, Count: 2}
}

// Announce sends Count unsolicited responses carrying records as
// answers, CacheFlush set on each (they are this responder's unique
// records), Interval apart.
func (a *Announcer) Announce(ctx context.Context, records []dns.ResourceRecord) error {
	count := a.Count
	if count <= 0 {
		count = 2
	}
	flagged := make([]dns.ResourceRecord, len(records))
	copy(flagged, records)
	for i := range flagged {
		flagged[i].CacheFlush = true
	}

	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		pkt := &dns.Packet{
			QR:      true,
			AA:      true,
			Answers: flagged,
		}
		if a.Send != nil {
			if err := a.Send(ctx, pkt); err != nil {
				return err
			}
		}

		if i < count-1 {
			timer := time.NewTimer(a.Interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return nil
}
