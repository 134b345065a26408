package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/crewplan-dev/schedule-board/backend/internal/config"
	"github.com/crewplan-dev/schedule-board/backend/internal/repository"
	"github.com/crewplan-dev/schedule-board/backend/internal/seed"
	"github.com/crewplan-dev/schedule-board/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var scheduleID int64

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 插入随机岗位, 3: 插入随机排班表, 4: 为排班表插入随机班次, 5: 插入完整演示数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&scheduleID, "schedule-id", 0, "随机插入班次的排班表 ID")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机用户", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("无法插入用户", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入用户成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的岗位数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				position := utils.GenerateRandomPosition()
				if err := repo.CreatePosition(position); err != nil {
					slog.Error("无法插入岗位", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入岗位成功", slog.Int("count", n-cnt))
		}
	case 3:
		if n <= 0 {
			slog.Error("请输入合法的排班表数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				schedule := utils.GenerateRandomSchedule(cfg.Timeline.DefaultMinHour, cfg.Timeline.DefaultMaxHour)
				if err := repo.CreateSchedule(schedule); err != nil {
					slog.Error("无法插入排班表", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入排班表成功", slog.Int("count", n-cnt))
		}
	case 4:
		if scheduleID <= 0 {
			slog.Error("请输入合法的排班表 ID")
			return
		}

		// 获取对应的排班表
		schedule, err := repo.GetScheduleByID(scheduleID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("指定的排班表不存在", slog.Int64("schedule_id", scheduleID))
			default:
				slog.Error("无法获取排班表", slog.String("error", err.Error()))
			}
			return
		}

		// 获取所有的员工和岗位信息
		users, err := repo.GetAllUsers()
		if err != nil {
			slog.Error("无法获取所有员工", slog.String("error", err.Error()))
			return
		}
		positions, err := repo.GetAllPositions()
		if err != nil {
			slog.Error("无法获取所有岗位", slog.String("error", err.Error()))
			return
		}

		// 为排班表生成随机班次并插入
		cnt := 0
		for i := 0; i < n; i++ {
			shift := utils.GenerateRandomShift(schedule, users, positions)
			if err := repo.CreateShift(shift); err != nil {
				slog.Error("无法插入班次", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("插入班次成功", slog.Int("count", cnt), slog.Int64("schedule_id", scheduleID))
	case 5:
		seed.SeedDemoData(cfg, repo)
	default:
		slog.Error("指定的操作非法")
	}
}
