package seed

import (
	"log/slog"

	"github.com/crewplan-dev/schedule-board/backend/internal/config"
	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
	"github.com/crewplan-dev/schedule-board/backend/internal/repository"
	"github.com/crewplan-dev/schedule-board/backend/internal/utils"
)

// SeedDemoData 灌入一套可以直接演示的门店数据：
// 前厅后厨各若干岗位、一批员工和一张排满班次的周排班表。
func SeedDemoData(cfg *config.Config, repo *repository.Repository) {
	// 岗位
	positions := make([]*domain.Position, 0)
	seen := make(map[string]bool)
	for i := 0; i < 12 && len(positions) < 6; i++ {
		position := utils.GenerateRandomPosition()
		if seen[position.Name] {
			continue
		}
		seen[position.Name] = true

		if err := repo.CreatePosition(position); err != nil {
			slog.Error("无法插入岗位", slog.String("error", err.Error()))
			continue
		}
		positions = append(positions, position)
	}
	slog.Info("插入岗位成功", slog.Int("count", len(positions)))

	// 员工
	employees := make([]*domain.User, 0)
	for i := 0; i < 12; i++ {
		user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
		if err != nil {
			slog.Error("无法生成随机用户", slog.String("error", err.Error()))
			continue
		}
		if len(positions) > 0 {
			user.PositionID = &positions[i%len(positions)].ID
		}

		if err := repo.CreateUser(user); err != nil {
			slog.Error("无法插入用户", slog.String("error", err.Error()))
			continue
		}
		employees = append(employees, user)
	}
	slog.Info("插入员工成功", slog.Int("count", len(employees)))

	// 本周的排班表和班次
	schedule := utils.GenerateRandomSchedule(cfg.Timeline.DefaultMinHour, cfg.Timeline.DefaultMaxHour)
	if err := repo.CreateSchedule(schedule); err != nil {
		slog.Error("无法插入排班表", slog.String("error", err.Error()))
		return
	}

	shiftCnt := 0
	for i := 0; i < 40; i++ {
		shift := utils.GenerateRandomShift(schedule, employees, positions)
		if err := repo.CreateShift(shift); err != nil {
			slog.Error("无法插入班次", slog.String("error", err.Error()))
			continue
		}
		shiftCnt++
	}
	slog.Info("插入排班表成功", slog.Int64("scheduleID", schedule.ID), slog.Int("shiftCount", shiftCnt))
}
