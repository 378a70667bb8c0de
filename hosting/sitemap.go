package hosting

import (
	"encoding/xml"
	"time"

	"github.com/pkg/errors"

	"github.com/vcrobe/supasite/config"
	"github.com/vcrobe/supasite/router"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapXML lists every displayable route under the configured origin.
func SitemapXML(cfg *config.Config, lastMod time.Time) ([]byte, error) {
	sitemap := Sitemap{Xmlns: sitemapNS}
	for _, r := range router.Routes() {
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     cfg.URL(r.Path()),
			LastMod: lastMod.Format("2006-01-02"),
		})
	}

	out, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return append([]byte(xml.Header), out...), nil
}
