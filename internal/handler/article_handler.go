package handler

import (
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type articleCreateInput struct {
	Title     string `json:"title" binding:"required,max=255"`
	Content   string `json:"content" binding:"required"`
	Excerpt   string `json:"excerpt" binding:"required"`
	Category  string `json:"category" binding:"required,max=100"`
	ImageURL  string `json:"imageUrl" binding:"omitempty,max=500"`
	Published *bool  `json:"published"`
}

type articleUpdateInput struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content   *string `json:"content" binding:"omitempty,min=1"`
	Excerpt   *string `json:"excerpt"`
	Category  *string `json:"category" binding:"omitempty,min=1,max=100"`
	ImageURL  *string `json:"imageUrl" binding:"omitempty,max=500"`
	Published *bool   `json:"published"`
}

// articleDetail 在文章原文之外附带渲染后的安全 HTML
type articleDetail struct {
	db.Article
	HTML string `json:"html"`
}

func newArticleHandler(gdb *gorm.DB) *resourceHandler[db.Article, articleCreateInput, articleUpdateInput] {
	return &resourceHandler[db.Article, articleCreateInput, articleUpdateInput]{
		svc:    service.NewResourceService[db.Article](gdb, "id ASC"),
		name:   "article",
		label:  "Article",
		plural: "articles",
		fromCreate: func(in articleCreateInput) db.Article {
			article := db.Article{
				Title:    in.Title,
				Content:  in.Content,
				Excerpt:  in.Excerpt,
				Category: in.Category,
				ImageURL: in.ImageURL,
			}
			if in.Published != nil {
				article.Published = *in.Published
			}
			return article
		},
		updates: func(in articleUpdateInput) map[string]any {
			fields := map[string]any{}
			if in.Title != nil {
				fields["title"] = *in.Title
			}
			if in.Content != nil {
				fields["content"] = *in.Content
			}
			if in.Excerpt != nil {
				fields["excerpt"] = *in.Excerpt
			}
			if in.Category != nil {
				fields["category"] = *in.Category
			}
			if in.ImageURL != nil {
				fields["image_url"] = *in.ImageURL
			}
			if in.Published != nil {
				fields["published"] = *in.Published
			}
			return fields
		},
		detail: func(c *gin.Context, article *db.Article) {
			html, err := service.RenderMarkdown(article.Content)
			if err != nil {
				// 渲染失败不应挡住原文，记录后降级为空 HTML
				log.Error().Err(err).Uint("article_id", article.ID).Msg("failed to render article markdown")
				html = ""
			}
			c.JSON(http.StatusOK, articleDetail{Article: *article, HTML: html})
		},
	}
}
