package main

import (
	"flag"

	"hydrocalc/model"

	"gorm.io/driver/mysql"
	"gorm.io/gen"
	"gorm.io/gorm"
)

type Querier interface {
	// SELECT * FROM @@table WHERE kind = @kind ORDER BY id DESC LIMIT @limit
	FilterByKind(kind string, limit int) ([]gen.T, error)
	// SELECT * FROM @@table WHERE label = @label ORDER BY id DESC
	FilterByLabel(label string) ([]gen.T, error)
}

func main() {
	dsn := flag.String("dsn", "root:root@(127.0.0.1:3306)/hydrocalc?charset=utf8mb4&parseTime=True&loc=Local", "mysql dsn")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath: "./dao",
		Mode:    gen.WithoutContext | gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gormdb, err := gorm.Open(mysql.Open(*dsn))
	if err != nil {
		panic(err)
	}
	g.UseDB(gormdb)

	g.ApplyBasic(model.CalculationRecord{})
	g.ApplyInterface(func(Querier) {}, model.CalculationRecord{})

	g.Execute()
}
