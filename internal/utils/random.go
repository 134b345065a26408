package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/crewplan-dev/schedule-board/backend/internal/domain"
	"github.com/crewplan-dev/schedule-board/backend/internal/timeline"
	"github.com/mozillazg/go-pinyin"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleStaff,
	domain.RoleStaff,
	domain.RoleStaff,
	domain.RoleManager, // 员工占多数，经理少量
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
		HourlyWage:   float64(rand.Intn(160)+160) / 10, // 16.0~31.9 每小时
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var positionNames = map[domain.Zone][]string{
	domain.ZoneFront: {"收银", "传菜", "迎宾", "值台"},
	domain.ZoneBack:  {"炒锅", "打荷", "凉菜", "洗消"},
}

var positionColors = []string{"#f97316", "#22c55e", "#3b82f6", "#a855f7", "#ef4444", "#14b8a6"}

func GenerateRandomPosition() *domain.Position {
	zone := domain.ZoneFront
	if rand.Intn(2) == 0 {
		zone = domain.ZoneBack
	}

	names := positionNames[zone]

	return &domain.Position{
		Name:  names[rand.Intn(len(names))],
		Zone:  zone,
		Color: positionColors[rand.Intn(len(positionColors))],
	}
}

// GenerateRandomSchedule 生成一张以最近的周一为起点的排班表。
func GenerateRandomSchedule(minHour, maxHour int) *domain.Schedule {
	now := time.Now()
	offset := int(now.Weekday())
	if offset == 0 {
		offset = 7
	}
	monday := now.AddDate(0, 0, -offset+1)

	// 随机落到前后几周，避免种子数据都挤在同一周
	monday = monday.AddDate(0, 0, 7*(rand.Intn(5)-2))

	return &domain.Schedule{
		Name:      monday.Format("01月02日") + " 周排班",
		WeekStart: monday.Format("2006-01-02"),
		MinHour:   minHour,
		MaxHour:   maxHour,
	}
}

// GenerateRandomShift 在排班表的某一天和时间轴窗口内生成一个一刻钟对齐的班次。
func GenerateRandomShift(schedule *domain.Schedule, employees []*domain.User, positions []*domain.Position) *domain.Shift {
	weekStart, _ := time.Parse("2006-01-02", schedule.WeekStart)
	date := weekStart.AddDate(0, 0, rand.Intn(7))

	window := timeline.Window{MinHour: schedule.MinHour, MaxHour: schedule.MaxHour}

	// 2~9 小时的班次，起止都吸附到一刻钟
	spanMinutes := (rand.Intn(29) + 8) * timeline.SnapStepMinutes
	if spanMinutes > window.TotalMinutes() {
		spanMinutes = window.TotalMinutes()
	}
	latestStart := window.EndMinutes() - spanMinutes
	startMinutes := window.StartMinutes() + rand.Intn((latestStart-window.StartMinutes())/timeline.SnapStepMinutes+1)*timeline.SnapStepMinutes

	breakMinutes := 0
	if spanMinutes >= 360 {
		breakMinutes = 30
	}

	shift := &domain.Shift{
		ScheduleID:   schedule.ID,
		Date:         date.Format("2006-01-02"),
		StartTime:    timeline.MinutesToTimeStr(startMinutes),
		EndTime:      timeline.MinutesToTimeStr(startMinutes + spanMinutes),
		BreakMinutes: breakMinutes,
	}

	if len(positions) > 0 && rand.Intn(4) != 0 {
		shift.PositionID = &positions[rand.Intn(len(positions))].ID
	}

	// 大部分班次分配员工，留一部分空班次
	if len(employees) > 0 && rand.Intn(5) != 0 {
		employee := employees[rand.Intn(len(employees))]
		shift.EmployeeID = &employee.ID
		shift.Cost = timeline.NetHours(shift.StartTime, shift.EndTime, shift.BreakMinutes) * employee.HourlyWage
	}

	return shift
}
