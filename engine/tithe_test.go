package engine

import (
	"testing"
	"time"

	"lucia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	titheCat  = &models.Category{ID: 8, Name: "十一奉献", Kind: models.KindExpense}
	titheCats = []models.Category{
		{ID: 1, Name: "工资", Kind: models.KindIncome, TitheEligible: true},
		{ID: 2, Name: "理财", Kind: models.KindIncome, TitheEligible: false},
		*titheCat,
	}
)

func TestGenerateTithes_ScenarioB(t *testing.T) {
	// 3 月 1000 元可计提收入 → gen_tithe_2024-03，金额 100，10 号到期
	txs := []models.Transaction{
		{ID: 1, Amount: 1000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 5)},
	}

	out := GenerateTithes(txs, titheCats, nil, titheCat, Config{TitheEnabled: true})
	require.Len(t, out, 1)
	assert.Equal(t, "gen_tithe_2024-03", out[0].ID)
	assert.InDelta(t, 100, out[0].Amount, 1e-9)
	assert.Equal(t, models.KindExpense, out[0].Kind)
	assert.Equal(t, titheCat.ID, out[0].CategoryID)
	assert.Equal(t, day(2024, time.March, 10), out[0].DueDate)
	assert.Equal(t, models.StatusPending, out[0].Status)
	assert.True(t, out[0].IsGenerated)
}

func TestGenerateTithes_FlagOff(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Amount: 1000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 5)},
	}
	assert.Nil(t, GenerateTithes(txs, titheCats, nil, titheCat, Config{TitheEnabled: false}))
}

func TestGenerateTithes_MissingCategorySkips(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Amount: 1000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 5)},
	}
	// 未配置十一奉献类别时静默跳过，不让聚合流程失败
	assert.Nil(t, GenerateTithes(txs, titheCats, nil, nil, Config{TitheEnabled: true}))
}

func TestGenerateTithes_OnlyEligibleIncome(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Amount: 1000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 5)},
		// 不可计提的收入类别
		{ID: 2, Amount: 500, Kind: models.KindIncome, CategoryID: 2, TxDate: day(2024, time.March, 6)},
		// 支出不计入计提基数
		{ID: 3, Amount: 300, Kind: models.KindExpense, CategoryID: 1, TxDate: day(2024, time.March, 7)},
	}

	out := GenerateTithes(txs, titheCats, nil, titheCat, Config{TitheEnabled: true})
	require.Len(t, out, 1)
	assert.InDelta(t, 100, out[0].Amount, 1e-9)
}

func TestGenerateTithes_GroupsByMonth(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Amount: 1000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.April, 5)},
		{ID: 2, Amount: 2000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 5)},
		{ID: 3, Amount: 500, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 20)},
	}

	out := GenerateTithes(txs, titheCats, nil, titheCat, Config{TitheEnabled: true})
	require.Len(t, out, 2)
	// 按月份升序输出
	assert.Equal(t, "gen_tithe_2024-03", out[0].ID)
	assert.InDelta(t, 250, out[0].Amount, 1e-9)
	assert.Equal(t, "gen_tithe_2024-04", out[1].ID)
	assert.InDelta(t, 100, out[1].Amount, 1e-9)
}

func TestGenerateTithes_Idempotent(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Amount: 1000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 5)},
	}

	first := GenerateTithes(txs, titheCats, nil, titheCat, Config{TitheEnabled: true})
	second := GenerateTithes(txs, titheCats, nil, titheCat, Config{TitheEnabled: true})
	assert.Equal(t, first, second)
}

func TestGenerateTithes_SettledSuppressesRegeneration(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Amount: 1000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 5)},
	}
	id := TitheID(Month{Year: 2024, Mon: time.March})
	settledRow := models.Obligation{ID: id, Amount: 100, Kind: models.KindExpense, CategoryID: 8, DueDate: day(2024, time.March, 10), Status: models.StatusSettled, IsGenerated: true}

	out := GenerateTithes(txs, titheCats, map[string]models.Obligation{id: settledRow}, titheCat, Config{TitheEnabled: true})
	require.Len(t, out, 1)
	assert.Equal(t, settledRow, out[0])

	// 结算后重算不会再引入同 id 的待处理实例
	assert.Equal(t, models.StatusSettled, out[0].Status)
}

func TestGenerateTithes_CustomRate(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Amount: 1000, Kind: models.KindIncome, CategoryID: 1, TxDate: day(2024, time.March, 5)},
	}

	out := GenerateTithes(txs, titheCats, nil, titheCat, Config{TitheEnabled: true, TitheRate: 0.05})
	require.Len(t, out, 1)
	assert.InDelta(t, 50, out[0].Amount, 1e-9)
}
