package printer

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"preplabel-backend/domain"
)

// discoveryPorts are the fixed service ports probed during a scan.
var discoveryPorts = map[int]string{
	6101: "browser-print",
	9100: "web-services",
	9200: "setup-utilities",
}

const (
	// discoveryWindow bounds the whole best-effort scan.
	discoveryWindow = 30 * time.Second
	probeTimeout    = 2 * time.Second
)

// discover probes every host/port pair concurrently and returns whatever
// answered within the window. Unreachable pairs are silently skipped; the
// scan is best effort by design.
func discover(ctx context.Context, hosts []string) []domain.DiscoveredPrinter {
	ctx, cancel := context.WithTimeout(ctx, discoveryWindow)
	defer cancel()

	var (
		mu    sync.Mutex
		found []domain.DiscoveredPrinter
		wg    sync.WaitGroup
	)

	dialer := &net.Dialer{Timeout: probeTimeout}

	for _, host := range hosts {
		for port, service := range discoveryPorts {
			wg.Add(1)
			go func(host string, port int, service string) {
				defer wg.Done()

				start := time.Now()
				conn, err := dialer.DialContext(ctx, "tcp", fmt.Sprintf("%s:%d", host, port))
				if err != nil {
					return
				}
				latency := time.Since(start)
				_ = conn.Close()

				mu.Lock()
				found = append(found, domain.DiscoveredPrinter{
					Address:   host,
					Port:      port,
					Service:   service,
					LatencyMS: latency.Milliseconds(),
				})
				mu.Unlock()
			}(host, port, service)
		}
	}

	wg.Wait()
	return found
}
