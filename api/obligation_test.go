package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 计划查询的标准返回行
func obligationRows(id string, amount float64, kind string, status string, generated bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "amount", "kind", "category_id", "description", "due_date", "status", "is_generated", "created_at", "updated_at"}).
		AddRow(id, amount, kind, 4, "房租", time.Now(), status, generated, time.Now(), time.Now())
}

func newObligationRouter() (*gin.Engine, *ObligationHandler) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewObligationHandler()
	router.POST("/obligations/settle", h.Settle)
	router.POST("/obligations/:id/unsettle", h.Unsettle)
	router.PUT("/obligations/:id", h.Update)
	router.DELETE("/obligations/:id", h.Delete)
	return router, h
}

func TestObligationHandler_Settle_Manual(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 手工计划只认库内行
	mock.ExpectQuery("SELECT .* FROM `obligations`").
		WithArgs("manual-abc").
		WillReturnRows(obligationRows("manual-abc", 1200, "expense", "pending", false))

	// 先写台账
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 再 upsert 计划行
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `obligations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router, _ := newObligationRouter()
	body := `{"id":"manual-abc"}`
	req := httptest.NewRequest("POST", "/obligations/settle", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "结算成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "settled", data["status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObligationHandler_Settle_Manual_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `obligations`").
		WithArgs("manual-missing").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router, _ := newObligationRouter()
	body := `{"id":"manual-missing"}`
	req := httptest.NewRequest("POST", "/obligations/settle", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObligationHandler_Settle_Generated(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 生成计划待处理阶段没有库内行
	mock.ExpectQuery("SELECT .* FROM `obligations`").
		WithArgs("gen_tithe_2024-03").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `obligations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router, _ := newObligationRouter()
	body := `{"id":"gen_tithe_2024-03","amount":100,"kind":"expense","category_id":8,"description":"十一奉献 2024-03","due_date":"2024-03-10"}`
	req := httptest.NewRequest("POST", "/obligations/settle", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "gen_tithe_2024-03", data["id"])
	assert.Equal(t, "settled", data["status"])
	assert.Equal(t, true, data["is_generated"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObligationHandler_Settle_Generated_AlreadySettled(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 已有已结算行：拒绝重复结算
	mock.ExpectQuery("SELECT .* FROM `obligations`").
		WithArgs("gen_tithe_2024-03").
		WillReturnRows(obligationRows("gen_tithe_2024-03", 100, "expense", "settled", true))

	router, _ := newObligationRouter()
	body := `{"id":"gen_tithe_2024-03","amount":100,"kind":"expense","category_id":8,"due_date":"2024-03-10"}`
	req := httptest.NewRequest("POST", "/obligations/settle", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "该计划已结算", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObligationHandler_Settle_Generated_MissingFields(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `obligations`").
		WithArgs("gen_card_招商银行_2024-02").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router, _ := newObligationRouter()
	// 缺金额等字段：无法从请求重建生成计划
	body := `{"id":"gen_card_招商银行_2024-02"}`
	req := httptest.NewRequest("POST", "/obligations/settle", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObligationHandler_Settle_UpsertFailureWarns(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `obligations`").
		WithArgs("manual-abc").
		WillReturnRows(obligationRows("manual-abc", 1200, "expense", "pending", false))

	// 流水写入成功
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 计划行落库失败：不回滚流水，只带回告警
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `obligations`").
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	router, _ := newObligationRouter()
	body := `{"id":"manual-abc"}`
	req := httptest.NewRequest("POST", "/obligations/settle", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "结算成功", resp["message"])
	assert.NotEmpty(t, resp["warning"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObligationHandler_Unsettle_Generated(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `obligations`").
		WithArgs("gen_tithe_2024-03").
		WillReturnRows(obligationRows("gen_tithe_2024-03", 100, "expense", "settled", true))

	// 生成计划撤销结算：整行删除
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `obligations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router, _ := newObligationRouter()
	req := httptest.NewRequest("POST", "/obligations/gen_tithe_2024-03/unsettle", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "撤销成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObligationHandler_Unsettle_Manual(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `obligations`").
		WithArgs("manual-abc").
		WillReturnRows(obligationRows("manual-abc", 1200, "expense", "settled", false))

	// 手工计划撤销结算：状态改回待处理
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `obligations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router, _ := newObligationRouter()
	req := httptest.NewRequest("POST", "/obligations/manual-abc/unsettle", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObligationHandler_Update_GeneratedRejected(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router, _ := newObligationRouter()
	body := `{"amount":200}`
	req := httptest.NewRequest("PUT", "/obligations/gen_tithe_2024-03", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "生成计划不可直接编辑", resp["message"])
}

func TestObligationHandler_Delete_GeneratedRejected(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router, _ := newObligationRouter()
	req := httptest.NewRequest("DELETE", "/obligations/gen_card_招商银行_2024-02", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "生成计划不可直接删除", resp["message"])
}
