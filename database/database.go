package database

import (
	"fmt"
	"log"

	"lucia/config"
	"lucia/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.Transaction{},
		&models.Obligation{},
		&models.InstallmentPurchase{},
		&models.Category{},
		&models.Setting{},
	); err != nil {
		return err
	}

	// 初始化默认类别（仅当表为空时）
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		defaultCats := []models.Category{
			// 支出类别
			{Name: "餐饮", Kind: models.KindExpense, Sort: 10, Color: "#ef4444"},
			{Name: "交通", Kind: models.KindExpense, Sort: 20, Color: "#3b82f6"},
			{Name: "购物", Kind: models.KindExpense, Sort: 30, Color: "#a855f7"},
			{Name: "住房", Kind: models.KindExpense, Sort: 40, Color: "#14b8a6"},
			// 约定类别：账单/十一奉献生成器按名称（大小写不敏感）找它们
			{Name: cfg.Planning.InvoiceCategory, Kind: models.KindExpense, Sort: 50, Color: "#f59e0b"},
			{Name: cfg.Planning.TitheCategory, Kind: models.KindExpense, Sort: 60, Color: "#ec4899"},
			{Name: "其他支出", Kind: models.KindExpense, Sort: 70, Color: "#64748b"},
			// 收入类别，工资/奖金/兼职计入十一奉献计提基数
			{Name: "工资", Kind: models.KindIncome, Sort: 10, Color: "#10b981", TitheEligible: true},
			{Name: "奖金", Kind: models.KindIncome, Sort: 20, Color: "#3b82f6", TitheEligible: true},
			{Name: "兼职", Kind: models.KindIncome, Sort: 30, Color: "#f59e0b", TitheEligible: true},
			{Name: "理财", Kind: models.KindIncome, Sort: 40, Color: "#a855f7"},
			{Name: "其他收入", Kind: models.KindIncome, Sort: 50, Color: "#64748b"},
		}
		if err := DB.Create(&defaultCats).Error; err != nil {
			log.Printf("警告: 初始化默认类别失败: %v", err)
		}
	}

	// 初始化十一奉献开关（仅当不存在时）
	var settingCount int64
	DB.Model(&models.Setting{}).Where("`key` = ?", models.SettingCalculateTithing).Count(&settingCount)
	if settingCount == 0 {
		_ = DB.Create(&models.Setting{Key: models.SettingCalculateTithing, Value: "false"}).Error
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
