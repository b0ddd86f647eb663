package engine

import (
	"testing"
	"time"

	"lucia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invoiceCat = &models.Category{ID: 9, Name: "信用卡账单", Kind: models.KindExpense}

func TestGenerateInvoices_ScenarioA(t *testing.T) {
	// 300 元分 3 期，2024-01-15 购买 → 2/3/4 月各 100 元
	purchases := []models.InstallmentPurchase{
		{ID: 1, Label: "手机", CardName: "招商银行", TotalAmount: 300, InstallmentCount: 3, PurchaseDate: day(2024, time.January, 15)},
	}

	for _, ms := range []string{"2024-02", "2024-03", "2024-04"} {
		m, err := ParseMonth(ms)
		require.NoError(t, err)
		out := GenerateInvoices(purchases, nil, m, invoiceCat, Config{})
		require.Len(t, out, 1, ms)
		assert.Equal(t, "gen_card_招商银行_"+ms, out[0].ID)
		assert.InDelta(t, 100, out[0].Amount, 1e-9)
		assert.Equal(t, models.KindExpense, out[0].Kind)
		assert.Equal(t, invoiceCat.ID, out[0].CategoryID)
		assert.Equal(t, models.StatusPending, out[0].Status)
		assert.True(t, out[0].IsGenerated)
		// 缺省还款日 10 号
		assert.Equal(t, 10, out[0].DueDate.Day())
	}

	// 购买当月和第 4 个月没有账单
	for _, ms := range []string{"2024-01", "2024-05"} {
		m, _ := ParseMonth(ms)
		assert.Empty(t, GenerateInvoices(purchases, nil, m, invoiceCat, Config{}), ms)
	}
}

func TestGenerateInvoices_LifetimeSum(t *testing.T) {
	// 不能整除的金额：各期合计与总额的误差不超过 1e-6·total
	total := 1000.0
	p := models.InstallmentPurchase{ID: 1, CardName: "工商银行", TotalAmount: total, InstallmentCount: 7, PurchaseDate: day(2024, time.January, 3)}

	sum := 0.0
	m := Month{Year: 2024, Mon: time.February}
	for i := 0; i < 7; i++ {
		out := GenerateInvoices([]models.InstallmentPurchase{p}, nil, m.AddMonths(i), invoiceCat, Config{})
		require.Len(t, out, 1)
		sum += out[0].Amount
	}
	assert.InDelta(t, total, sum, 1e-6*total)
}

func TestGenerateInvoices_GroupsByCard(t *testing.T) {
	purchases := []models.InstallmentPurchase{
		{ID: 1, CardName: "招商银行", TotalAmount: 600, InstallmentCount: 3, PurchaseDate: day(2024, time.January, 10)},
		{ID: 2, CardName: "招商银行", TotalAmount: 90, InstallmentCount: 3, PurchaseDate: day(2024, time.January, 20)},
		{ID: 3, CardName: "工商银行", TotalAmount: 300, InstallmentCount: 1, PurchaseDate: day(2024, time.January, 5)},
	}
	m := Month{Year: 2024, Mon: time.February}

	out := GenerateInvoices(purchases, nil, m, invoiceCat, Config{})
	require.Len(t, out, 2)

	// 同卡合并为一条，按首次出现顺序输出
	assert.Equal(t, "gen_card_招商银行_2024-02", out[0].ID)
	assert.InDelta(t, 230, out[0].Amount, 1e-9) // 200 + 30
	assert.Equal(t, "gen_card_工商银行_2024-02", out[1].ID)
	assert.InDelta(t, 300, out[1].Amount, 1e-9)
}

func TestGenerateInvoices_Idempotent(t *testing.T) {
	purchases := []models.InstallmentPurchase{
		{ID: 1, CardName: "招商银行", TotalAmount: 300, InstallmentCount: 3, PurchaseDate: day(2024, time.January, 15)},
	}
	m := Month{Year: 2024, Mon: time.March}

	first := GenerateInvoices(purchases, nil, m, invoiceCat, Config{})
	second := GenerateInvoices(purchases, nil, m, invoiceCat, Config{})
	assert.Equal(t, first, second)
}

func TestGenerateInvoices_SettledSuppressesRegeneration(t *testing.T) {
	purchases := []models.InstallmentPurchase{
		{ID: 1, CardName: "招商银行", TotalAmount: 300, InstallmentCount: 3, PurchaseDate: day(2024, time.January, 15)},
	}
	m := Month{Year: 2024, Mon: time.February}
	id := InvoiceID("招商银行", m)

	// 已结算行金额与重算结果不同，也必须原样返回，不被覆盖
	settledRow := models.Obligation{ID: id, Amount: 95, Kind: models.KindExpense, CategoryID: 9, DueDate: day(2024, time.February, 8), Status: models.StatusSettled, IsGenerated: true}
	out := GenerateInvoices(purchases, map[string]models.Obligation{id: settledRow}, m, invoiceCat, Config{})

	require.Len(t, out, 1)
	assert.Equal(t, settledRow, out[0])
}

func TestGenerateInvoices_MissingCategorySkips(t *testing.T) {
	purchases := []models.InstallmentPurchase{
		{ID: 1, CardName: "招商银行", TotalAmount: 300, InstallmentCount: 3, PurchaseDate: day(2024, time.January, 15)},
	}
	m := Month{Year: 2024, Mon: time.February}

	// 未配置账单类别时静默跳过，不报错
	assert.Nil(t, GenerateInvoices(purchases, nil, m, nil, Config{}))
}

func TestGenerateInvoices_DueDayRegistry(t *testing.T) {
	purchases := []models.InstallmentPurchase{
		{ID: 1, CardName: "招商银行", TotalAmount: 300, InstallmentCount: 3, PurchaseDate: day(2024, time.January, 15)},
	}
	m := Month{Year: 2024, Mon: time.February}
	cfg := Config{CardDueDays: map[string]int{"招商银行": 31}}

	out := GenerateInvoices(purchases, nil, m, invoiceCat, cfg)
	require.Len(t, out, 1)
	// 登记还款日 31 号，2 月收缩到月末
	assert.Equal(t, 29, out[0].DueDate.Day())
}
