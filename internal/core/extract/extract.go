// Package extract 從網頁擷取可讀的食譜文章內容
package extract

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"leftover-chef/internal/infrastructure/config"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// minBlockChars 單一區塊納入輸出的最短長度
	minBlockChars = 30
	// minArticleChars 低於此長度視為擷取失敗
	minArticleChars = 50
	// maxTitleChars 標題長度上限
	maxTitleChars = 160
)

// 擷取失敗的原因，一律以 200 回應帶給前端，不當成伺服器錯誤
var (
	ErrInvalidURL     = errors.New("invalid or missing url param")
	ErrFetchFailed    = errors.New("failed to fetch page")
	ErrNoReadableText = errors.New("could not extract readable text")
)

// 會污染正文的標籤，遍歷時整棵跳過
var noisyTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "svg": true,
	"canvas": true, "form": true, "nav": true, "footer": true,
	"header": true, "aside": true, "iframe": true,
}

// 視為正文候選容器的 id/class 名稱
var candidateNames = map[string]bool{
	"content": true, "post-content": true, "entry-content": true,
	"main": true, "article": true, "post": true, "story": true,
}

// 納入正文輸出的區塊標籤
var keepTags = map[string]bool{
	"p": true, "li": true, "blockquote": true, "pre": true,
	"code": true, "h1": true, "h2": true, "h3": true,
}

var (
	spaceRun   = regexp.MustCompile(`\s+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

// Article 擷取結果
type Article struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Extractor 文章擷取器
type Extractor struct {
	client   *resty.Client
	maxChars int
}

// NewExtractor 創建文章擷取器
func NewExtractor(cfg *config.ExtractConfig) *Extractor {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	return &Extractor{
		client:   client,
		maxChars: cfg.MaxChars,
	}
}

// Extract 抓取網頁並擷取標題與可讀正文
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*Article, error) {
	if rawURL == "" || (!strings.HasPrefix(strings.ToLower(rawURL), "http://") && !strings.HasPrefix(strings.ToLower(rawURL), "https://")) {
		return nil, ErrInvalidURL
	}

	resp, err := e.client.R().SetContext(ctx).Get(rawURL)
	if err != nil || !resp.IsSuccess() {
		return nil, ErrFetchFailed
	}

	doc, err := html.Parse(strings.NewReader(resp.String()))
	if err != nil {
		return nil, ErrNoReadableText
	}

	title := strings.TrimSpace(findTitle(doc))
	target := bestContainer(doc)
	text := collectReadableText(target)

	if len(strings.TrimSpace(text)) < minArticleChars {
		return nil, ErrNoReadableText
	}

	text = newlineRun.ReplaceAllString(strings.TrimSpace(text), "\n\n")
	if len(text) > e.maxChars {
		text = text[:e.maxChars]
	}
	if len(title) > maxTitleChars {
		title = title[:maxTitleChars]
	}

	return &Article{Title: title, Text: text}, nil
}

// findTitle 取出 <title> 文字
func findTitle(doc *html.Node) string {
	var title string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			title = textContent(n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

// bestContainer 在候選容器中挑出正文最長的一個，找不到就退回 body
func bestContainer(doc *html.Node) *html.Node {
	var best *html.Node
	bestScore := 0
	var body *html.Node

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if noisyTags[n.Data] {
				return
			}
			if n.Data == "body" {
				body = n
			}
			if isCandidate(n) {
				score := len(normalizeSpace(textContent(n)))
				if score > bestScore {
					bestScore = score
					best = n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if best != nil {
		return best
	}
	if body != nil {
		return body
	}
	return doc
}

// isCandidate 判斷節點是否為正文候選容器
func isCandidate(n *html.Node) bool {
	if n.Data == "article" || n.Data == "main" {
		return true
	}
	for _, attr := range n.Attr {
		switch attr.Key {
		case "role":
			if attr.Val == "main" {
				return true
			}
		case "id":
			if candidateNames[attr.Val] {
				return true
			}
		case "class":
			for _, cls := range strings.Fields(attr.Val) {
				if candidateNames[cls] {
					return true
				}
			}
		}
	}
	return false
}

// collectReadableText 收集容器內的可讀區塊
// 沒有任何夠長的區塊時退回整個容器的文字
func collectReadableText(container *html.Node) string {
	if container == nil {
		return ""
	}

	var blocks []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if noisyTags[n.Data] {
				return
			}
			if keepTags[n.Data] {
				raw := normalizeSpace(textContent(n))
				if len(raw) >= minBlockChars {
					blocks = append(blocks, raw)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(container)

	if len(blocks) == 0 {
		return normalizeSpace(textContent(container))
	}
	return strings.Join(blocks, "\n\n")
}

// textContent 取出節點的全部文字，跳過雜訊標籤
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && noisyTags[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// normalizeSpace 將連續空白壓成單一空格
func normalizeSpace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
