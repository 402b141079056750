package nets

import (
	"net/http"
	"net/url"
	"time"

	"github.com/reusee/stenowiki/logs"
)

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	getURL GetProxyURL,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) HTTPClient {
	return &http.Client{
		Timeout: time.Minute,
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := getURL()
				if err != nil {
					return nil, err
				}
				if u == nil || isSocks(u) || isLocalAddr(req.URL.Host) {
					return nil, nil
				}
				logger.Debug("http proxy", "url", req.URL.String())
				return u, nil
			},
		},
	}
}
