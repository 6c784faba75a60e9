// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/artw-stylekit/internal/httputil"
	"github.com/pdiddy/artw-stylekit/internal/logging"
)

// doiResolverURL is the DOI resolver prefix. Package-level var for test
// substitution.
var doiResolverURL = "https://doi.org/"

// DefaultDOITimeout bounds a single DOI lookup.
const DefaultDOITimeout = 5 * time.Second

var validDOI = regexp.MustCompile(`(?i)^10\.\d{4,9}/[-._;()/:A-Z0-9]+$`)

// DOIResult is the outcome of a DOI lookup.
type DOIResult int

const (
	// DOIReachable means the resolver answered 200 after redirects.
	DOIReachable DOIResult = iota
	// DOIUnreachable means the lookup failed or returned another status.
	DOIUnreachable
	// DOITimeout means the lookup did not finish in time.
	DOITimeout
	// DOIInvalid means the string is not a DOI; no request was made.
	DOIInvalid
)

func (r DOIResult) String() string {
	switch r {
	case DOIReachable:
		return "reachable"
	case DOIUnreachable:
		return "unreachable"
	case DOITimeout:
		return "timeout"
	case DOIInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// DOIChecker resolves DOIs against doi.org. The zero value is usable.
type DOIChecker struct {
	Client  *http.Client
	Timeout time.Duration
	Logger  logging.Logger
}

// Check reports whether doi resolves. Network failures are reported as
// results, never as errors.
func (c *DOIChecker) Check(ctx context.Context, doi string) DOIResult {
	doi = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(doi), "https://doi.org/"))
	if !validDOI.MatchString(doi) {
		return DOIInvalid
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultDOITimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := c.Logger
	if log == nil {
		log = logging.Nop()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, doiResolverURL+doi, nil)
	if err != nil {
		log.Debug("doi request", "doi", doi, "error", err.Error())
		return DOIUnreachable
	}

	resp, err := httputil.DoWithRetry(ctx, c.Client, req, 1)
	if err != nil {
		if isTimeout(err) {
			log.Debug("doi lookup timed out", "doi", doi)
			return DOITimeout
		}
		log.Debug("doi lookup failed", "doi", doi, "error", err.Error())
		return DOIUnreachable
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug("doi lookup status", "doi", doi, "status", resp.StatusCode)
		return DOIUnreachable
	}
	return DOIReachable
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
