package pages

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	"github.com/elifeweb/cms/internal/cmsdb"
	"github.com/elifeweb/cms/pkg/config"
	"github.com/elifeweb/cms/pkg/middleware"
)

// Server は公開ページAPIサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *cmsdb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
}

// NewServer は新しい公開ページAPIサーバーを生成する。
// 管理APIサービスと同一のSQLiteデータベースを参照する。
func NewServer(cfg *config.Config) (*Server, error) {
	sqlDB, err := sql.Open("sqlite", cfg.DatabasePath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := cmsdb.InitSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS())

	s := &Server{
		router:  router,
		port:    cfg.PagesPort,
		queries: cmsdb.New(sqlDB),
		db:      sqlDB,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// 公開ページ向けのため認証は行わない。
func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")
	{
		// 事業部ページの表示用データ取得
		api.GET("/divisions/:id", s.handleGetDivisionPage())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "pages"})
	})
}

// announcementResponse はお知らせのJSONレスポンス構造。
type announcementResponse struct {
	// ID はお知らせの一意識別子。
	ID string `json:"id"`
	// Title はお知らせのタイトル。
	Title string `json:"title"`
	// Body はお知らせの本文。
	Body string `json:"body"`
	// CreatedAt は作成日時（RFC3339形式）。
	CreatedAt string `json:"created_at"`
}

// moduleResponse は公開中モジュールのJSONレスポンス構造。
type moduleResponse struct {
	// ID はモジュールの一意識別子。
	ID string `json:"id"`
	// ModuleType はモジュール種別。
	ModuleType string `json:"module_type"`
}

// programResponse はプログラムのJSONレスポンス構造。
// 公開中のモジュールとお知らせをネストして返す。
type programResponse struct {
	// ID はプログラムの一意識別子。
	ID string `json:"id"`
	// Title はプログラム名。
	Title string `json:"title"`
	// Description はプログラムの説明。
	Description string `json:"description"`
	// CreatedAt は作成日時（RFC3339形式）。
	CreatedAt string `json:"created_at"`
	// Modules は公開中のモジュール一覧。
	Modules []moduleResponse `json:"modules"`
	// Announcements はお知らせ一覧（新しい順）。
	Announcements []announcementResponse `json:"announcements"`
}

// divisionPageResponse は事業部ページのJSONレスポンス構造。
type divisionPageResponse struct {
	// ID は事業部の一意識別子。
	ID string `json:"id"`
	// Name は事業部名。
	Name string `json:"name"`
	// Programs は公開中のプログラム一覧（新しい順）。
	Programs []programResponse `json:"programs"`
}

// handleGetDivisionPage は事業部ページの表示用データを返すハンドラを返す。
// 公開中のプログラムを作成日時の新しい順に、公開中のモジュールと
// お知らせをネストして返す。非公開または存在しない事業部は404。
func (s *Server) handleGetDivisionPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		divisionID := c.Param("id")

		division, err := s.queries.GetDivisionByID(c.Request.Context(), divisionID)
		if err == sql.ErrNoRows || (err == nil && division.IsActive == 0) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Division not found"})
			return
		}
		if err != nil {
			log.Printf("事業部取得エラー: id=%s: %v", divisionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		programs, err := s.queries.ListActiveProgramsByDivisionID(c.Request.Context(), divisionID)
		if err != nil {
			log.Printf("プログラム一覧取得エラー: division_id=%s: %v", divisionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		resp := divisionPageResponse{
			ID:       division.ID,
			Name:     division.Name,
			Programs: make([]programResponse, 0, len(programs)),
		}

		for _, p := range programs {
			modules, err := s.queries.ListPublishedModulesByProgramID(c.Request.Context(), p.ID)
			if err != nil {
				log.Printf("モジュール一覧取得エラー: program_id=%s: %v", p.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}

			announcements, err := s.queries.ListAnnouncementsByProgramID(c.Request.Context(), p.ID)
			if err != nil {
				log.Printf("お知らせ一覧取得エラー: program_id=%s: %v", p.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}

			pr := programResponse{
				ID:            p.ID,
				Title:         p.Title,
				Description:   p.Description,
				CreatedAt:     p.CreatedAt.Format(time.RFC3339),
				Modules:       make([]moduleResponse, 0, len(modules)),
				Announcements: make([]announcementResponse, 0, len(announcements)),
			}
			for _, m := range modules {
				pr.Modules = append(pr.Modules, moduleResponse{
					ID:         m.ID,
					ModuleType: m.ModuleType,
				})
			}
			for _, a := range announcements {
				pr.Announcements = append(pr.Announcements, announcementResponse{
					ID:        a.ID,
					Title:     a.Title,
					Body:      a.Body,
					CreatedAt: a.CreatedAt.Format(time.RFC3339),
				})
			}
			resp.Programs = append(resp.Programs, pr)
		}

		c.JSON(http.StatusOK, resp)
	}
}
