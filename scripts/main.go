// Command scripts sizes every pipeline case workbook in a directory and
// writes one result workbook per input file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hydrocalc/service"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	host := flag.String("h", "", "mysql地址，为空时不保存计算记录")
	port := flag.String("p", "3306", "mysql端口")
	user := flag.String("u", "root", "mysql账号")
	password := flag.String("a", "", "mysql密码")
	fileDir := flag.String("d", "", "excel文件所在的目录")
	outDir := flag.String("o", "./reports", "结果输出目录")
	flag.Parse()

	if *fileDir == "" {
		flag.Usage()
		return
	}

	var db *gorm.DB
	if *host != "" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/hydrocalc?charset=utf8mb4&parseTime=True&loc=Local", *user, *password, *host, *port)
		var err error
		db, err = service.OpenDB(service.DBConfig{DSN: dsn}, logger.Silent)
		if err != nil {
			fmt.Printf("连接mysql失败: %v\n", err)
			return
		}
	}
	svc := service.NewService(db, service.DefaultConfig())

	files, err := os.ReadDir(*fileDir)
	if err != nil {
		fmt.Printf("读取目录失败: %v\n", err)
		return
	}
	if err = os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Printf("创建输出目录失败: %v\n", err)
		return
	}

	var totalImported, totalSkipped int
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".xlsx") {
			continue
		}
		now := time.Now()
		filePath := filepath.Join(*fileDir, file.Name())
		baseName := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))

		result, err := sizeFile(svc, filePath, filepath.Join(*outDir, service.ReportFileName("pipeline_cases", baseName)))
		if err != nil {
			fmt.Printf("处理文件 %s 失败: %v\n", filePath, err)
			continue
		}
		fmt.Printf("文件 %s: %d 个工况完成，%d 个跳过，耗时 %.2fs\n", filePath, result.Imported, result.Skipped, time.Since(now).Seconds())
		if result.HeadStats != nil {
			fmt.Printf("  H 最小 %.3f m，最大 %.3f m，平均 %.3f m\n", result.HeadStats.Min, result.HeadStats.Max, result.HeadStats.Average)
		}
		totalImported += result.Imported
		totalSkipped += result.Skipped
	}

	fmt.Printf("\n总计 %d 个工况，跳过 %d 个\n", totalImported, totalSkipped)
}

func sizeFile(svc *service.Service, in, out string) (*service.ImportCasesResult, error) {
	f, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result, err := svc.ImportPipelineCases(f)
	if err != nil {
		return nil, err
	}

	w, err := os.Create(out)
	if err != nil {
		return nil, err
	}
	defer w.Close()
	if err = service.WriteCasesReport(w, result); err != nil {
		return nil, err
	}
	return result, nil
}
