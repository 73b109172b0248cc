// Command mdns-browse is a small example that browses for a single
// DNS-SD service type and prints every instance it observes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dnsscience/simpledns/dns"
	"github.com/dnsscience/simpledns/mdns"
)

var (
	serviceType = flag.String("type", "_http._tcp.local", "service type to browse for")
	window      = flag.Duration("window", 5*time.Second, "how long to collect answers")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := mdns.CreateSocket(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdns-browse: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	cfg := mdns.DefaultConfig()
	responder := mdns.NewResponder(conn, cfg, nil)

	go func() {
		if err := responder.Run(ctx); err != nil && err != context.Canceled {
			fmt.Fprintf(os.Stderr, "mdns-browse: event loop: %v\n", err)
		}
	}()

	name, err := dns.NewName(*serviceType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdns-browse: invalid service type %q: %v\n", *serviceType, err)
		os.Exit(1)
	}

	querier := mdns.NewQuerier(responder)
	results, err := querier.Browse(ctx, name, *window)
	if err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "mdns-browse: browse: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d instance(s) of %s:\n", len(results), *serviceType)
	for _, rr := range results {
		if ptr, ok := rr.RData.(dns.DomainName); ok {
			fmt.Printf("  %s\n", ptr.Name)
		}
	}

	responder.Close()
}
