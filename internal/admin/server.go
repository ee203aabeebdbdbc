package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/elifeweb/cms/internal/cmsdb"
	"github.com/elifeweb/cms/pkg/config"
	"github.com/elifeweb/cms/pkg/middleware"
	"github.com/elifeweb/cms/pkg/token"
)

// headerAdminToken は管理者トークンを受け取るHTTPヘッダーキー。
const headerAdminToken = "x-admin-token"

// moduleAction は管理APIが受け付ける操作の種別。
// 文字列のまま分岐せず、閉じた定数集合として扱う。
type moduleAction string

const (
	actionCreate moduleAction = "create"
	actionUpdate moduleAction = "update"
	actionDelete moduleAction = "delete"
)

// Server は管理APIサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *cmsdb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// tokenSecret は管理者トークンの検証用シークレット。
	tokenSecret string
}

// NewServer は新しい管理APIサーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行う。
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
		router:      router,
		port:        cfg.AdminPort,
		queries:     cmsdb.New(sqlDB),
		db:          sqlDB,
		tokenSecret: cfg.AdminTokenSecret,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// OPTIONSプリフライトはCORSミドルウェアが応答する。
func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")
	api.Use(s.adminAuth())
	{
		// モジュール操作（create/update/delete）のディスパッチ
		api.POST("/modules", s.handleDispatch())
		// プログラム配下のモジュール一覧取得（管理画面用）
		api.GET("/programs/:id/modules", s.handleListModules())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "admin"})
	})
}

// adminAuth は管理者トークンを検証するGinミドルウェアを返す。
// トークン検証後に管理者レコードを照会し、有効な管理者のみを通過させる。
// 認可判定に使う事業部IDはトークンのペイロードではなく管理者レコードから取る。
// 古いトークンや偽造トークンが異動前の事業部を主張するのを防ぐためである。
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader(headerAdminToken)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing admin token"})
			return
		}

		// 形式不正・期限切れ・署名不一致は呼び出し元に区別させない
		principal := token.Verify(tokenStr, s.tokenSecret)
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin token"})
			return
		}

		admin, err := s.queries.GetAdminByID(c.Request.Context(), principal.AdminID)
		if err == sql.ErrNoRows || (err == nil && admin.IsActive == 0) {
			log.Printf("無効または未登録の管理者によるアクセス: admin_id=%s", principal.AdminID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin not found or inactive"})
			return
		}
		if err != nil {
			log.Printf("管理者レコード取得エラー: admin_id=%s: %v", principal.AdminID, err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("division_id", admin.DivisionID)
		c.Next()
	}
}

// dispatchRequest はモジュール操作リクエストのJSON構造。
type dispatchRequest struct {
	// Action は操作種別（create/update/delete）。
	Action string `json:"action" binding:"required"`
	// Data は操作ごとのペイロード。
	Data json.RawMessage `json:"data"`
}

// createModuleData はモジュール作成ペイロードのJSON構造。
type createModuleData struct {
	// ProgramID はモジュールを追加するプログラムのID。
	ProgramID string `json:"program_id"`
	// ModuleType はモジュール種別。
	ModuleType string `json:"module_type"`
	// IsPublished は公開フラグ。省略時は非公開で作成する。
	IsPublished *bool `json:"is_published"`
}

// updateModuleData はモジュール更新ペイロードのJSON構造。
type updateModuleData struct {
	// ID は対象モジュールのID。
	ID string `json:"id"`
	// IsPublished は公開フラグ。指定された場合のみ更新する。
	IsPublished *bool `json:"is_published"`
}

// deleteModuleData はモジュール削除ペイロードのJSON構造。
type deleteModuleData struct {
	// ID は対象モジュールのID。
	ID string `json:"id"`
}

// moduleResponse はモジュールのJSONレスポンス構造。
type moduleResponse struct {
	// ID はモジュールの一意識別子。
	ID string `json:"id"`
	// ProgramID は所属プログラムのID。
	ProgramID string `json:"program_id"`
	// ModuleType はモジュール種別。
	ModuleType string `json:"module_type"`
	// IsPublished は公開フラグ。
	IsPublished bool `json:"is_published"`
	// CreatedAt は作成日時（RFC3339形式）。
	CreatedAt string `json:"created_at"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at"`
}

// toModuleResponse はDB行をJSONレスポンスに変換する。
func toModuleResponse(m cmsdb.ProgramModule) moduleResponse {
	return moduleResponse{
		ID:          m.ID,
		ProgramID:   m.ProgramID,
		ModuleType:  m.ModuleType,
		IsPublished: m.IsPublished != 0,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}

// isValidModuleType はモジュール種別が許可された値かを判定する。
func isValidModuleType(t string) bool {
	switch t {
	case "announcement", "registration", "advertisement":
		return true
	}
	return false
}

// handleDispatch はモジュール操作リクエストを処理するハンドラを返す。
// actionの値に応じてcreate/update/deleteに振り分ける。
func (s *Server) handleDispatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dispatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("リクエストボディのパースエラー: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request body: %v", err)})
			return
		}

		divisionID := c.GetString("division_id")

		switch moduleAction(req.Action) {
		case actionCreate:
			s.createModule(c, req.Data, divisionID)
		case actionUpdate:
			s.updateModule(c, req.Data, divisionID)
		case actionDelete:
			s.deleteModule(c, req.Data, divisionID)
		default:
			log.Printf("不正なアクション: action=%q", req.Action)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		}
	}
}

// authorizeProgram はプログラムが指定された事業部に属するかを判定する。
// プログラムが存在しない場合も権限なしとして扱い、
// リソースの存在有無を呼び出し元に漏らさない。
func (s *Server) authorizeProgram(ctx context.Context, programID, divisionID string) (bool, error) {
	program, err := s.queries.GetProgramByID(ctx, programID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return program.DivisionID == divisionID, nil
}

// createModule はモジュール作成を処理する。
// 対象プログラムが管理者の事業部に属する場合のみ作成を許可する。
func (s *Server) createModule(c *gin.Context, data json.RawMessage, divisionID string) {
	var d createModuleData
	if err := json.Unmarshal(data, &d); err != nil {
		log.Printf("createペイロードのパースエラー: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request body: %v", err)})
		return
	}
	if d.ProgramID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "program_id is required"})
		return
	}
	if !isValidModuleType(d.ModuleType) {
		log.Printf("不正なモジュール種別: module_type=%q", d.ModuleType)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid module type"})
		return
	}

	authorized, err := s.authorizeProgram(c.Request.Context(), d.ProgramID, divisionID)
	if err != nil {
		log.Printf("プログラム取得エラー: action=create, program_id=%s: %v", d.ProgramID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !authorized {
		log.Printf("事業部外プログラムへの作成要求: program_id=%s, division_id=%s", d.ProgramID, divisionID)
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this program"})
		return
	}

	moduleID := uuid.New().String()
	var isPublished int64
	if d.IsPublished != nil && *d.IsPublished {
		isPublished = 1
	}

	if err := s.queries.CreateProgramModule(c.Request.Context(), cmsdb.CreateProgramModuleParams{
		ID:          moduleID,
		ProgramID:   d.ProgramID,
		ModuleType:  d.ModuleType,
		IsPublished: isPublished,
	}); err != nil {
		// 一意制約違反を含むストレージエラーはメッセージをそのまま返す（管理者向けAPI）
		log.Printf("モジュール作成エラー: program_id=%s, module_type=%s: %v", d.ProgramID, d.ModuleType, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.queries.GetProgramModuleByID(c.Request.Context(), moduleID)
	if err != nil {
		log.Printf("作成したモジュールの取得エラー: id=%s: %v", moduleID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "module": toModuleResponse(created)})
}

// updateModule はモジュール更新を処理する。
// モジュール → プログラム → 事業部の2段階で所有関係を解決して認可する。
// ペイロードに含まれるフィールドのみを更新する（この面で変更できるのは公開フラグのみ）。
func (s *Server) updateModule(c *gin.Context, data json.RawMessage, divisionID string) {
	var d updateModuleData
	if err := json.Unmarshal(data, &d); err != nil {
		log.Printf("updateペイロードのパースエラー: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request body: %v", err)})
		return
	}
	if d.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	m, err := s.queries.GetProgramModuleByID(c.Request.Context(), d.ID)
	if err == sql.ErrNoRows {
		// 404はモジュールが実在しないことを確認した後にのみ返す
		log.Printf("存在しないモジュールへの更新要求: id=%s", d.ID)
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}
	if err != nil {
		log.Printf("モジュール取得エラー: action=update, id=%s: %v", d.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorized, err := s.authorizeProgram(c.Request.Context(), m.ProgramID, divisionID)
	if err != nil {
		log.Printf("プログラム取得エラー: action=update, program_id=%s: %v", m.ProgramID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !authorized {
		log.Printf("事業部外モジュールへの更新要求: id=%s, division_id=%s", d.ID, divisionID)
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this module"})
		return
	}

	if d.IsPublished != nil {
		var isPublished int64
		if *d.IsPublished {
			isPublished = 1
		}
		if err := s.queries.UpdateProgramModulePublished(c.Request.Context(), cmsdb.UpdateProgramModulePublishedParams{
			IsPublished: isPublished,
			ID:          d.ID,
		}); err != nil {
			log.Printf("モジュール更新エラー: id=%s: %v", d.ID, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	updated, err := s.queries.GetProgramModuleByID(c.Request.Context(), d.ID)
	if err != nil {
		log.Printf("更新後のモジュール取得エラー: id=%s: %v", d.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "module": toModuleResponse(updated)})
}

// deleteModule はモジュール削除を処理する。
// 更新と同じ2段階の認可を行い、成功時はモジュール本体を含まない応答を返す。
func (s *Server) deleteModule(c *gin.Context, data json.RawMessage, divisionID string) {
	var d deleteModuleData
	if err := json.Unmarshal(data, &d); err != nil {
		log.Printf("deleteペイロードのパースエラー: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request body: %v", err)})
		return
	}
	if d.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	m, err := s.queries.GetProgramModuleByID(c.Request.Context(), d.ID)
	if err == sql.ErrNoRows {
		log.Printf("存在しないモジュールへの削除要求: id=%s", d.ID)
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}
	if err != nil {
		log.Printf("モジュール取得エラー: action=delete, id=%s: %v", d.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorized, err := s.authorizeProgram(c.Request.Context(), m.ProgramID, divisionID)
	if err != nil {
		log.Printf("プログラム取得エラー: action=delete, program_id=%s: %v", m.ProgramID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !authorized {
		log.Printf("事業部外モジュールへの削除要求: id=%s, division_id=%s", d.ID, divisionID)
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this module"})
		return
	}

	if err := s.queries.DeleteProgramModule(c.Request.Context(), d.ID); err != nil {
		log.Printf("モジュール削除エラー: id=%s: %v", d.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleListModules はプログラム配下のモジュール一覧を返すハンドラを返す。
// 管理画面のトグル表示用。自事業部のプログラムのみ参照できる。
func (s *Server) handleListModules() gin.HandlerFunc {
	return func(c *gin.Context) {
		programID := c.Param("id")
		divisionID := c.GetString("division_id")

		authorized, err := s.authorizeProgram(c.Request.Context(), programID, divisionID)
		if err != nil {
			log.Printf("プログラム取得エラー: action=list, program_id=%s: %v", programID, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !authorized {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this program"})
			return
		}

		modules, err := s.queries.ListProgramModulesByProgramID(c.Request.Context(), programID)
		if err != nil {
			log.Printf("モジュール一覧取得エラー: program_id=%s: %v", programID, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		responses := make([]moduleResponse, 0, len(modules))
		for _, m := range modules {
			responses = append(responses, toModuleResponse(m))
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "modules": responses})
	}
}
