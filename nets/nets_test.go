package nets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stenowiki/configs"
	"github.com/reusee/stenowiki/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		testCases := []struct {
			addr  string
			local bool
		}{
			{"127.0.0.1:10000", true},
			{"localhost:80", true},
			{"[::1]:443", true},
			{"192.168.1.2", true},
			{"10.0.0.1:8080", true},
			{"8.8.8.8:53", false},
			{"example.com:443", false},
		}
		for _, c := range testCases {
			if got := isLocalAddr(c.addr); got != c.local {
				t.Fatalf("%s: got %v", c.addr, got)
			}
		}
	})
}

func TestParseProxyAddr(t *testing.T) {
	u, err := parseProxyAddr("")
	if err != nil || u != nil {
		t.Fatalf("got %v %v", u, err)
	}
	u, err = parseProxyAddr("socks://127.0.0.1:1080")
	if err != nil {
		t.Fatal(err)
	}
	if u.Scheme != "socks5" || !isSocks(u) {
		t.Fatalf("got %v", u)
	}
	u, err = parseProxyAddr("http://127.0.0.1:3128")
	if err != nil {
		t.Fatal(err)
	}
	if isSocks(u) {
		t.Fatalf("got %v", u)
	}
	if _, err := parseProxyAddr("ftp://127.0.0.1"); err == nil {
		t.Fatal("should fail")
	}
}

func TestHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"HAT": "hat"}`)
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		client HTTPClient,
		proxyAddr ProxyAddr,
	) {
		if proxyAddr != "" {
			t.Fatalf("got %s", proxyAddr)
		}
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != `{"HAT": "hat"}` {
			t.Fatalf("got %s", content)
		}
	})
}
