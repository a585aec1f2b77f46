package images_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"trustlens/internal/images"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestExtract_ResolvesRelativeSources(t *testing.T) {
	t.Parallel()
	doc := docFromHTML(t, `<html><body><img src="/img/a.jpg"></body></html>`)

	got := images.Extract(doc, "http://x.test/page")
	want := []string{"http://x.test/img/a.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_DocumentOrderAndDuplicates(t *testing.T) {
	t.Parallel()
	doc := docFromHTML(t, `<html><body>
		<img src="http://cdn.test/one.png">
		<img src="two.png">
		<img src="http://cdn.test/one.png">
	</body></html>`)

	got := images.Extract(doc, "http://shop.test/catalog/page")
	want := []string{
		"http://cdn.test/one.png",
		"http://shop.test/catalog/two.png",
		"http://cdn.test/one.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_SkipsMissingSrc(t *testing.T) {
	t.Parallel()
	doc := docFromHTML(t, `<html><body>
		<img>
		<img src="">
		<img src="ok.gif">
	</body></html>`)

	got := images.Extract(doc, "http://x.test/")
	want := []string{"http://x.test/ok.gif"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_NoImagesIsEmptyNotNil(t *testing.T) {
	t.Parallel()
	doc := docFromHTML(t, `<html><body><p>text only</p></body></html>`)

	got := images.Extract(doc, "http://x.test/")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}
