package handler

type ContextKey string

var (
	RoleCtxKey  ContextKey = "role"
	SubCtxKey   ContextKey = "sub"
	MyInfoCtx   ContextKey = "myInfo"
	UserInfoCtx ContextKey = "userInfo"
	PositionCtx ContextKey = "position"
	ScheduleCtx ContextKey = "schedule"
	ShiftCtx    ContextKey = "shift"
)
