// README: External data-source clients (Wikipedia, Wikivoyage, Commons, Places, tips).
//
// Every client makes a single best-effort attempt per call with a bounded
// timeout. Callers treat any returned error as an empty contribution; no
// client panics or retries.
package providers

import (
	"crypto/tls"
	"net/http"
	"time"
)

// Options configures the transport of one provider instance.
type Options struct {
	// Timeout bounds every outbound call. Zero means DefaultTimeout.
	Timeout time.Duration

	// InsecureTLS disables certificate verification on this instance's
	// transport only. It never touches global transport state.
	InsecureTLS bool
}

const DefaultTimeout = 10 * time.Second

func newHTTPClient(opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &http.Client{Timeout: timeout, Transport: transport}
}
