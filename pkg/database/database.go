package database

import (
	"fmt"
	"log"

	"rhythm_coach_backend/internal/config"
	"rhythm_coach_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Chart{},
		&model.TechTag{},
		&model.Annotation{},
		&model.PracticeRecord{},
		&model.Feedback{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认技术特征词表（为空时写入固定词表，标注只能从这里选）
	var tagCount int64
	db.Model(&model.TechTag{}).Count(&tagCount)
	if tagCount == 0 {
		defaultTags := []model.TechTag{
			{Code: "trill", Name: "交互 (Trill)", Description: "左右交替连打", Enabled: true},
			{Code: "stairs", Name: "楼梯 (Stairs)", Description: "阶梯状上行/下行配置", Enabled: true},
			{Code: "jack", Name: "纵连 (Jack)", Description: "同键位连续打击", Enabled: true},
			{Code: "jump", Name: "大跨度 (Jump)", Description: "键位间大幅移动", Enabled: true},
			{Code: "chord", Name: "多押 (Chord)", Description: "多键同时按下", Enabled: true},
			{Code: "soflan", Name: "变速 (Soflan)", Description: "BPM/卷轴速度变化", Enabled: true},
			{Code: "reading", Name: "读谱难 (Reading)", Description: "谱面视觉密度高难以读取", Enabled: true},
			{Code: "stamina", Name: "耐力 (Stamina)", Description: "长时间高密度体力段", Enabled: true},
			{Code: "tech", Name: "锁手 (Tech)", Description: "别扭的指法/换手配置", Enabled: true},
			{Code: "gimmick", Name: "各显神通 (Gimmick)", Description: "特殊机制或陷阱配置", Enabled: true},
		}
		for _, t := range defaultTags {
			db.Create(&t)
		}
	}

	return db, nil
}
