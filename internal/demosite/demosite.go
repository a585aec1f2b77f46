// Package demosite serves small storefront fixtures for exercising the
// inspection pipeline end to end: one page stuffed with risk phrases and
// one that reads like a legitimate shop.
package demosite

import (
	"fmt"
	"net/http"
)

// DemoSite is a simple HTTP server hosting the fixture storefronts.
type DemoSite struct {
	cfg Config
	mux *http.ServeMux
}

// NewDemoSite creates a new demo site instance.
func NewDemoSite(cfg Config) *DemoSite {
	s := &DemoSite{cfg: cfg, mux: http.NewServeMux()}

	s.mux.HandleFunc("/", s.page(riskyStorefront))
	s.mux.HandleFunc("/clean", s.page(cleanStorefront))
	s.mux.HandleFunc("/img/", s.imageHandler)

	return s
}

// Handler exposes the mux for in-process use in tests.
func (s *DemoSite) Handler() http.Handler {
	return s.mux
}

// Start starts the demo site and blocks.
func (s *DemoSite) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	fmt.Printf("Demo storefront on http://localhost%s (risky) and /clean\n", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *DemoSite) page(html string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/clean" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}
}

// imageHandler serves a 1x1 GIF for any /img/ path so image downloads
// have something real to fetch.
func (s *DemoSite) imageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/gif")
	_, _ = w.Write(pixelGIF)
}

// Smallest valid GIF89a, transparent single pixel.
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

const riskyStorefront = `<!DOCTYPE html>
<html>
<head><title>MegaBrand Outlet - Unbelievable Price</title></head>
<body>
<h1>MegaBrand Outlet</h1>
<p>Grab a first copy of your favorite designer watch at the lowest price.
Every piece is a premium replica, aaa quality, shipped direct factory rate.</p>
<p>Flash sale this week only! Limited stock. Cash on delivery only,
no return and no warranty. Dm for price or whatsapp to order.</p>
<img src="/img/watch1.jpg" alt="watch">
<img src="/img/watch2.jpg" alt="watch">
<img src="/img/bag1.jpg" alt="bag">
<p>All items delivered in plain packaging to avoid customs.</p>
</body>
</html>
`

const cleanStorefront = `<!DOCTYPE html>
<html>
<head><title>Hartley &amp; Sons - Fine Leather Goods</title></head>
<body>
<h1>Hartley &amp; Sons</h1>
<p>Handcrafted leather wallets and belts, made in our own workshop since
1987. Free returns within 30 days and a two-year warranty on every item.</p>
<img src="/img/wallet.jpg" alt="wallet">
<img src="/img/belt.jpg" alt="belt">
<p>Questions? Our support team answers within one business day.</p>
</body>
</html>
`
