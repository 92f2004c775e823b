package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leftover-chef/internal/infrastructure/config"
)

func testExtractor(maxChars int) *Extractor {
	return NewExtractor(&config.ExtractConfig{
		Timeout:  5 * time.Second,
		MaxChars: maxChars,
	})
}

const articlePage = `<!doctype html>
<html>
<head><title>  Weeknight Shakshuka - LeftoverChef Blog  </title>
<script>window.tracker = "should never appear in output";</script>
</head>
<body>
<nav>Home | Recipes | About: navigation links that must be dropped</nav>
<div class="sidebar">Subscribe to our newsletter for more zero-waste cooking tips every week!</div>
<article>
<h2>Weeknight Shakshuka from whatever is in the fridge</h2>
<p>Start by softening a chopped onion in olive oil over medium heat for five minutes.</p>
<p>Add garlic, cumin, and paprika, then pour in a can of crushed tomatoes and simmer.</p>
<p>short one</p>
<ul><li>Crack the eggs directly into the sauce and cover until the whites are just set.</li></ul>
</article>
<footer>Copyright notice and social links that must also be dropped entirely.</footer>
</body>
</html>`

func TestExtractArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(articlePage))
	}))
	defer srv.Close()

	art, err := testExtractor(5000).Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if art.Title != "Weeknight Shakshuka - LeftoverChef Blog" {
		t.Errorf("title = %q", art.Title)
	}
	for _, want := range []string{
		"softening a chopped onion",
		"crushed tomatoes and simmer",
		"Crack the eggs directly into the sauce",
	} {
		if !strings.Contains(art.Text, want) {
			t.Errorf("text missing %q\ngot: %s", want, art.Text)
		}
	}
	for _, banned := range []string{
		"navigation links",
		"newsletter",
		"Copyright notice",
		"window.tracker",
		"short one",
	} {
		if strings.Contains(art.Text, banned) {
			t.Errorf("text contains noise %q", banned)
		}
	}
}

func TestExtractFallsBackToBody(t *testing.T) {
	page := `<html><head><title>Plain</title></head><body>
<p>No candidate container here, but this paragraph is clearly long enough to keep around.</p>
</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	art, err := testExtractor(5000).Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(art.Text, "clearly long enough") {
		t.Errorf("text = %q", art.Text)
	}
}

func TestExtractTruncatesText(t *testing.T) {
	long := strings.Repeat("Leftover vegetables become dinner with a little planning. ", 50)
	page := "<html><head><title>Long</title></head><body><article><p>" + long + "</p></article></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	art, err := testExtractor(200).Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(art.Text) > 200 {
		t.Errorf("text length = %d, cap is 200", len(art.Text))
	}
}

func TestExtractInvalidURL(t *testing.T) {
	for _, u := range []string{"", "ftp://example.com/recipe", "not-a-url", "javascript:alert(1)"} {
		t.Run(u, func(t *testing.T) {
			_, err := testExtractor(5000).Extract(context.Background(), u)
			if !errors.Is(err, ErrInvalidURL) {
				t.Errorf("Extract(%q) err = %v, want ErrInvalidURL", u, err)
			}
		})
	}
}

func TestExtractFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := testExtractor(5000).Extract(context.Background(), srv.URL); !errors.Is(err, ErrFetchFailed) {
		t.Errorf("err = %v, want ErrFetchFailed", err)
	}

	srv.Close()
	if _, err := testExtractor(5000).Extract(context.Background(), srv.URL); !errors.Is(err, ErrFetchFailed) {
		t.Errorf("connection refused err = %v, want ErrFetchFailed", err)
	}
}

func TestExtractTooLittleText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head><title>Thin</title></head><body><p>tiny</p></body></html>"))
	}))
	defer srv.Close()

	if _, err := testExtractor(5000).Extract(context.Background(), srv.URL); !errors.Is(err, ErrNoReadableText) {
		t.Errorf("err = %v, want ErrNoReadableText", err)
	}
}
