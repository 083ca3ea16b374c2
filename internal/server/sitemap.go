package server

import (
	"encoding/xml"
	"net/http"

	"github.com/iwvelando/mortgage-calculator/pkg/pseo"
	"go.uber.org/zap"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// sitemapLocations lists the calculator, every payment page selected for
// this build and every published rates page.
func (h *handler) sitemapLocations() []sitemapURL {
	slugs := h.pages.SlugsForBuild(h.production)
	rates := pseo.RatesPageParams()

	urls := make([]sitemapURL, 0, 1+len(slugs)+len(rates))
	urls = append(urls, sitemapURL{Loc: h.siteURL + "/", ChangeFreq: "weekly", Priority: "1.0"})
	for _, slug := range slugs {
		urls = append(urls, sitemapURL{Loc: h.siteURL + "/mortgage-payment/" + slug, ChangeFreq: "monthly", Priority: "0.6"})
	}
	for _, page := range rates {
		urls = append(urls, sitemapURL{
			Loc:        h.siteURL + "/mortgage-rates/" + page.State + "/" + page.Tier,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}
	return urls
}

func (h *handler) handleSitemap(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSitemap"

	set := sitemapURLSet{Xmlns: sitemapNamespace, URLs: h.sitemapLocations()}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append([]byte(xml.Header), body...)); err != nil {
		h.logger.Warn("failed to write sitemap",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}
