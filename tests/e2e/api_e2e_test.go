package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/devfolio/internal/auth"
	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/router"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler   http.Handler
	public    *localClient
	admin     *localClient
	baseURL   string
	adminPass string
	uploadDir string
}

// localClient 直接调用内存中的 handler，不经过真实网络
type localClient struct {
	handler http.Handler
	token   string
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w.Result(), nil
}

func TestE2E_AllInterfaces(t *testing.T) {
	suite := newE2ESuite(t)
	suite.login(t)

	t.Run("health", suite.testHealth)
	t.Run("admin content management", suite.testAdminContent)
	t.Run("public endpoints", suite.testPublicEndpoints)
	t.Run("messages", suite.testMessages)
	t.Run("upload", suite.testUpload)
	t.Run("logout", suite.testLogout)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Profile{},
		&db.Article{},
		&db.Skill{},
		&db.Experience{},
		&db.Education{},
		&db.Activity{},
		&db.Value{},
		&db.Message{},
		&db.SocialLink{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	adminPass := "e2e-secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	cfg := config.AppConfig{
		GinMode:       gin.TestMode,
		UploadDir:     t.TempDir(),
		UploadURLPath: "/uploads",
	}

	handler := router.Setup(cfg, gdb, auth.NewManager(0))

	return &e2eSuite{
		handler:   handler,
		public:    &localClient{handler: handler},
		admin:     &localClient{handler: handler},
		baseURL:   "http://devfolio.test",
		adminPass: adminPass,
		uploadDir: cfg.UploadDir,
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()

	resp := s.doJSON(t, s.public, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "admin",
		"password": s.adminPass,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	var body struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if body.SessionID == "" {
		t.Fatalf("expected session id from login")
	}
	s.admin.token = body.SessionID
}

func (s *e2eSuite) doJSON(t *testing.T, client *localClient, method, path string, payload any) *http.Response {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

func (s *e2eSuite) testHealth(t *testing.T) {
	resp := s.doJSON(t, s.public, http.MethodGet, "/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeJSON[map[string]any](t, resp)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", body)
	}
}

func (s *e2eSuite) testAdminContent(t *testing.T) {
	// 写入个人资料
	resp := s.doJSON(t, s.admin, http.MethodPut, "/api/profile", map[string]any{
		"name":     "Jane Dev",
		"email":    "jane@example.com",
		"bio":      "Backend developer",
		"position": "Engineer",
		"location": "Jakarta",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile upsert failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	// 技能按展示顺序维护
	for i, name := range []string{"Go", "PostgreSQL", "Docker"} {
		resp := s.doJSON(t, s.admin, http.MethodPost, "/api/skills", map[string]any{
			"name":       name,
			"category":   "Backend",
			"percentage": 60 + i*10,
			"order":      i + 1,
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("skill create failed with %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp = s.doJSON(t, s.admin, http.MethodPost, "/api/articles", map[string]any{
		"title":    "Shipping with confidence",
		"content":  "# Intro\n\nWrite **tests** first.",
		"excerpt":  "On testing",
		"category": "Engineering",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("article create failed with %d", resp.StatusCode)
	}
	article := decodeJSON[db.Article](t, resp)
	if article.ID == 0 {
		t.Fatalf("expected article id")
	}

	// 经历、教育、活动、理念、社交链接各建一条
	resp = s.doJSON(t, s.admin, http.MethodPost, "/api/experiences", map[string]any{
		"title": "Backend Developer", "company": "Acme", "description": "Built APIs",
		"startDate": "2021", "current": true, "order": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("experience create failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = s.doJSON(t, s.admin, http.MethodPost, "/api/education", map[string]any{
		"degree": "BSc Computer Science", "institution": "State University",
		"description": "Systems focus", "startDate": "2016", "endDate": "2020", "order": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("education create failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = s.doJSON(t, s.admin, http.MethodPost, "/api/activities", map[string]any{
		"title": "Meetup talk", "description": "Spoke about Go", "icon": "fa-mic", "order": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("activity create failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = s.doJSON(t, s.admin, http.MethodPost, "/api/values", map[string]any{
		"title": "Craftsmanship", "description": "Care about details", "icon": "fa-gem", "order": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("value create failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = s.doJSON(t, s.admin, http.MethodPost, "/api/social-links", map[string]any{
		"name": "GitHub", "icon": "fab fa-github", "url": "https://github.com/janedev",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("social link create failed with %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func (s *e2eSuite) testPublicEndpoints(t *testing.T) {
	resp := s.doJSON(t, s.public, http.MethodGet, "/api/profile", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile read failed with %d", resp.StatusCode)
	}
	profile := decodeJSON[db.Profile](t, resp)
	if profile.Name != "Jane Dev" {
		t.Fatalf("unexpected profile: %#v", profile)
	}

	resp = s.doJSON(t, s.public, http.MethodGet, "/api/skills", nil)
	skills := decodeJSON[[]db.Skill](t, resp)
	if len(skills) != 3 || skills[0].Name != "Go" {
		t.Fatalf("expected ordered skills, got %#v", skills)
	}

	resp = s.doJSON(t, s.public, http.MethodGet, "/api/articles", nil)
	articles := decodeJSON[[]db.Article](t, resp)
	if len(articles) != 1 {
		t.Fatalf("expected one article, got %d", len(articles))
	}

	resp = s.doJSON(t, s.public, http.MethodGet, fmt.Sprintf("/api/articles/%d", articles[0].ID), nil)
	detail := decodeJSON[map[string]any](t, resp)
	if html, _ := detail["html"].(string); !strings.Contains(html, "<strong>tests</strong>") {
		t.Fatalf("expected rendered article body, got %v", detail["html"])
	}

	// 管理端的写操作对匿名访客关闭
	resp = s.doJSON(t, s.public, http.MethodPost, "/api/skills", map[string]any{
		"name": "Hack", "category": "X", "percentage": 1,
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous write, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func (s *e2eSuite) testMessages(t *testing.T) {
	resp := s.doJSON(t, s.public, http.MethodPost, "/api/messages", map[string]any{
		"name": "Visitor", "email": "visitor@example.com",
		"subject": "Hello", "message": "Nice site",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("message create failed with %d", resp.StatusCode)
	}
	created := decodeJSON[db.Message](t, resp)
	if created.Read {
		t.Fatalf("new message must be unread")
	}

	resp = s.doJSON(t, s.public, http.MethodGet, "/api/messages", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("inbox must require auth, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = s.doJSON(t, s.admin, http.MethodGet, "/api/messages", nil)
	inbox := decodeJSON[[]db.Message](t, resp)
	if len(inbox) != 1 {
		t.Fatalf("expected one message, got %d", len(inbox))
	}

	resp = s.doJSON(t, s.admin, http.MethodPut, fmt.Sprintf("/api/messages/%d/read", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mark read failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	// 访客凭邮箱撤回自己的留言
	resp = s.doJSON(t, s.public, http.MethodDelete, fmt.Sprintf("/api/messages/%d/sender", created.ID), map[string]any{
		"email": "visitor@example.com",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sender delete failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = s.doJSON(t, s.admin, http.MethodGet, "/api/messages", nil)
	inbox = decodeJSON[[]db.Message](t, resp)
	if len(inbox) != 0 {
		t.Fatalf("expected empty inbox after delete, got %d", len(inbox))
	}
}

func (s *e2eSuite) testUpload(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="avatar.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(buf.Bytes()); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/api/upload", body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.admin.Do(req)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload failed with %d", resp.StatusCode)
	}
	result := decodeJSON[map[string]any](t, resp)
	imageURL, _ := result["imageUrl"].(string)
	if !strings.HasPrefix(imageURL, "/uploads/") {
		t.Fatalf("unexpected image url %q", imageURL)
	}

	// 上传后的文件应能通过静态路由取回
	getReq, err := http.NewRequest(http.MethodGet, s.baseURL+imageURL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	getResp, err := s.public.Do(getReq)
	if err != nil {
		t.Fatalf("static fetch failed: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("expected uploaded file to be served, got %d", getResp.StatusCode)
	}
}

func (s *e2eSuite) testLogout(t *testing.T) {
	resp := s.doJSON(t, s.admin, http.MethodPost, "/api/auth/logout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout failed with %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = s.doJSON(t, s.admin, http.MethodGet, "/api/auth/status", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected revoked session to be rejected, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
