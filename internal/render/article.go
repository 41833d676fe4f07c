package render

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"mobius-kb/internal/kb"
)

const siteName = "Mobius知识库"

// ArticlePage renders the full article document for a record, inserting
// the record's content field verbatim. Used by the generator for pages
// that do not exist yet.
func ArticlePage(a kb.Article) (string, error) {
	return renderDoc(document(a,
		Div(
			Class("content-wrapper"),
			g.Raw(a.Content),
		),
	))
}

// OutlinePage renders the structured outline document built from record
// metadata only. Used by the converter, which overwrites whatever body
// the page had before.
func OutlinePage(a kb.Article) (string, error) {
	return renderDoc(document(a,
		Div(
			Class("markdown-content"),
			H2(g.Text("概述")),
			P(g.Text(a.Excerpt)),

			H2(g.Text("主要要点")),
			H3(g.Text("核心信息")),
			Ul(
				Li(Strong(g.Text("发布日期：")), g.Text(a.Date)),
				Li(Strong(g.Text("阅读时间：")), g.Text(a.ReadingTime)),
				Li(Strong(g.Text("分类：")), g.Text(a.Category)),
				Li(Strong(g.Text("类型：")), g.Text(a.Type)),
			),
			H3(g.Text("相关标签")),
			P(g.Text(strings.Join(a.Tags, ", "))),

			H2(g.Text("详细信息")),
			P(g.Textf("本文章详细介绍%s相关的专业知识和实用指南。如需了解更多信息，请联系Mobius专业顾问。", a.Category)),

			H2(g.Text("专业服务")),
			P(g.Textf("Mobius为您提供全方位的%s支持服务，包括专业咨询、申请协助、后续跟进等。通过我们的专业服务，让您的%s过程更加顺畅高效。", a.Category, a.Category)),

			H2(g.Text("联系方式")),
			P(g.Text("如需了解更多信息或获取专业咨询，请联系我们的专业顾问团队。")),
		),
	))
}

// document is the shared page shell. Title, excerpt and tags come from
// the data file and are emitted as text nodes, so they are escaped; only
// the content passed in by ArticlePage is raw.
func document(a kb.Article, content g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>\n"),
		HTML(
			Lang("zh-CN"),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(a.Title+" - "+siteName)),
				Meta(Name("description"), Content(a.Excerpt)),
				Link(Rel("stylesheet"), Href("../style.css")),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), g.Attr("crossorigin")),
				Link(Href("https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700;800&family=Noto+Sans+SC:wght@300;400;500;600;700;800&display=swap"), Rel("stylesheet")),
				Link(Rel("stylesheet"), Href("https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css")),
			),
			Body(
				Div(
					Class("container"),
					Article(
						Class("knowledge-article"),
						g.Attr("data-id", a.ID),
						Header(
							Class("article-header"),
							Div(
								Class("article-meta"),
								Span(Class("article-date"), g.Text(a.Date)),
								Span(Class("article-reading-time"), g.Text(a.ReadingTime)),
							),
							H1(Class("article-title"), g.Text(a.Title)),
							Div(
								Class("article-excerpt"),
								P(g.Text(a.Excerpt)),
							),
						),
						Div(
							Class("article-content"),
							content,
						),
						Footer(
							Class("article-footer"),
							Div(
								Class("article-tags"),
								tagSpans(a.Tags),
							),
							Div(
								Class("article-back-link"),
								A(
									Href("../knowledge.html"),
									Class("back-link"),
									I(Class("fas fa-arrow-left")),
									g.Text("返回知识库"),
								),
							),
						),
					),
				),
			),
		),
	})
}

func tagSpans(tags []string) g.Node {
	nodes := make([]g.Node, 0, len(tags))
	for _, t := range tags {
		nodes = append(nodes, Span(Class("article-tag"), g.Text(t)))
	}
	return g.Group(nodes)
}

func renderDoc(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
