package timeline

// Rect 是屏幕坐标系下的一段水平区间。
type Rect struct {
	Left  float64
	Width float64
}

func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Viewport 是拖拽控制器对滚动容器的全部依赖。
// 由调用方在构造时显式注入，控制器自身不做任何查找。
// 约定拖拽期间只有当前控制器会写 scrollLeft。
type Viewport interface {
	// TimelineRect 返回时间轴本体当前的屏幕矩形，滚动会使其左移或右移
	TimelineRect() Rect
	// VisibleRect 返回滚动容器可见区域的屏幕矩形
	VisibleRect() Rect
	ScrollLeft() float64
	SetScrollLeft(px float64)
}

// FrameScheduler 以动画帧的节奏驱动边缘滚动循环。
type FrameScheduler interface {
	Request(fn func()) (id int)
	Cancel(id int)
}

// CreateFunc 在拖拽提交时被调用，时间字符串为零填充的 24 小时制 HH:MM。
type CreateFunc func(date string, startTime string, endTime string, employeeID *int64)

type DragState int

const (
	StateIdle DragState = iota
	StateDragging
)

// Preview 是拖拽过程中持续派生的预览数据，供渲染层展示。
type Preview struct {
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
	Label        string  `json:"label"`
	Hours        float64 `json:"hours"`
	Cost         float64 `json:"cost"`
}

// DragConfig 是拖拽控制器的静态参数。
type DragConfig struct {
	Window          Window
	EdgeThresholdPx float64 // 指针距容器边缘多近时开始边缘滚动
	MaxScrollStepPx float64 // 每帧最大滚动距离，随指针贴近边缘线性增大
	MinSpanMinutes  int     // 提交所需的最小跨度，小于它的拖拽按误触丢弃
	Locked          bool    // 排班表已发布时锁定，禁止发起拖拽
}

// DragController 实现时间轴上拖拽新建班次的状态机：
// Idle -> Dragging -> （提交或丢弃）-> Idle。
// 指针事件是全局捕获的，换算始终以时间轴本体的矩形为基准，
// 因此指针移出时间轴之后拖拽依然继续。
type DragController struct {
	cfg      DragConfig
	viewport Viewport
	frames   FrameScheduler
	onCreate CreateFunc

	state      DragState
	date       string
	employeeID *int64
	hourlyWage float64

	// 两个锚点都是吸附后的分钟数，anchorA 固定在按下位置，anchorB 跟随指针
	anchorA int
	anchorB int

	lastPointerX float64
	frameID      int
	frameActive  bool
}

func NewDragController(cfg DragConfig, viewport Viewport, frames FrameScheduler, onCreate CreateFunc) *DragController {
	if cfg.EdgeThresholdPx <= 0 {
		cfg.EdgeThresholdPx = 60
	}
	if cfg.MaxScrollStepPx <= 0 {
		cfg.MaxScrollStepPx = 24
	}
	if cfg.MinSpanMinutes <= 0 {
		cfg.MinSpanMinutes = SnapStepMinutes
	}

	return &DragController{
		cfg:      cfg,
		viewport: viewport,
		frames:   frames,
		onCreate: onCreate,
		state:    StateIdle,
	}
}

func (c *DragController) State() DragState {
	return c.state
}

// Begin 在指针按下时触发 Idle -> Dragging。
// 排班表已锁定或没有注册创建回调时忽略本次手势。
func (c *DragController) Begin(date string, employeeID *int64, hourlyWage float64, pointerX float64) bool {
	if c.state != StateIdle || c.cfg.Locked || c.onCreate == nil {
		return false
	}

	snapped := c.snapPointer(pointerX)

	c.state = StateDragging
	c.date = date
	c.employeeID = employeeID
	c.hourlyWage = hourlyWage
	c.anchorA = snapped
	c.anchorB = snapped
	c.lastPointerX = pointerX

	c.startEdgeScroll()
	return true
}

// Move 在指针移动时更新拖拽终点锚点。
func (c *DragController) Move(pointerX float64) {
	if c.state != StateDragging {
		return
	}

	c.lastPointerX = pointerX
	c.anchorB = c.snapPointer(pointerX)
}

// End 在指针抬起时结束拖拽。跨度达到最小值时调用创建回调提交，
// 否则按误触静默丢弃，两种情况都回到 Idle。
func (c *DragController) End() {
	if c.state != StateDragging {
		return
	}

	startMinutes := min(c.anchorA, c.anchorB)
	endMinutes := max(c.anchorA, c.anchorB)

	startMinutes = c.cfg.Window.Clamp(SnapToQuarterHour(startMinutes))
	endMinutes = c.cfg.Window.Clamp(SnapToQuarterHour(endMinutes))

	date := c.date
	employeeID := c.employeeID
	c.reset()

	if endMinutes-startMinutes < c.cfg.MinSpanMinutes {
		return
	}

	c.onCreate(date, MinutesToTimeStr(startMinutes), MinutesToTimeStr(endMinutes), employeeID)
}

// Cancel 不提交直接回到 Idle，对应 Escape 等取消信号。
func (c *DragController) Cancel() {
	if c.state != StateDragging {
		return
	}
	c.reset()
}

// Close 在组件卸载时调用。未结束的拖拽会被丢弃，
// 边缘滚动循环必须停掉，否则会留下一个持有过期布局的失控回调。
func (c *DragController) Close() {
	c.reset()
}

// Preview 返回当前拖拽区间的预览。第二个返回值在非拖拽状态下为 false。
func (c *DragController) Preview() (Preview, bool) {
	if c.state != StateDragging {
		return Preview{}, false
	}

	startMinutes := c.cfg.Window.Clamp(min(c.anchorA, c.anchorB))
	endMinutes := c.cfg.Window.Clamp(max(c.anchorA, c.anchorB))

	startStr := MinutesToTimeStr(startMinutes)
	endStr := MinutesToTimeStr(endMinutes)
	hours := float64(endMinutes-startMinutes) / 60

	return Preview{
		LeftPercent:  c.cfg.Window.PercentAtMinutes(startMinutes),
		WidthPercent: c.cfg.Window.PercentAtMinutes(endMinutes) - c.cfg.Window.PercentAtMinutes(startMinutes),
		Label:        FormatTimeShort(startStr) + " - " + FormatTimeShort(endStr),
		Hours:        hours,
		Cost:         hours * c.hourlyWage,
	}, true
}

// snapPointer 把指针的横坐标换算为吸附后的分钟数。
// 换算基准是时间轴本体的矩形而不是事件目标，滚动后依然正确。
func (c *DragController) snapPointer(pointerX float64) int {
	rect := c.viewport.TimelineRect()

	pct := 0.0
	if rect.Width > 0 {
		pct = (pointerX - rect.Left) / rect.Width * 100
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	minutes, _ := c.cfg.Window.SnapPercent(pct)
	return minutes
}

func (c *DragController) startEdgeScroll() {
	if c.framesUnavailable() || c.frameActive {
		return
	}
	c.frameActive = true
	c.frameID = c.frames.Request(c.edgeScrollStep)
}

// edgeScrollStep 每帧执行一次：指针贴近容器边缘时推进滚动，
// 并用滚动后的时间轴矩形重新换算终点锚点，因为滚动改变了像素到时间的映射。
func (c *DragController) edgeScrollStep() {
	if c.state != StateDragging {
		c.frameActive = false
		return
	}

	if step := c.ScrollAdjustment(c.lastPointerX); step != 0 {
		c.viewport.SetScrollLeft(c.viewport.ScrollLeft() + step)
		c.anchorB = c.snapPointer(c.lastPointerX)
	}

	c.frameID = c.frames.Request(c.edgeScrollStep)
}

// ScrollAdjustment 返回指针位于 pointerX 时本帧应该滚动的像素数。
// 距边缘越近步长越大（与 1 - 距离/阈值 成正比），在阈值之外为 0。
func (c *DragController) ScrollAdjustment(pointerX float64) float64 {
	visible := c.viewport.VisibleRect()

	if d := pointerX - visible.Left; d < c.cfg.EdgeThresholdPx {
		if d < 0 {
			d = 0
		}
		return -c.cfg.MaxScrollStepPx * (1 - d/c.cfg.EdgeThresholdPx)
	}

	if d := visible.Right() - pointerX; d < c.cfg.EdgeThresholdPx {
		if d < 0 {
			d = 0
		}
		return c.cfg.MaxScrollStepPx * (1 - d/c.cfg.EdgeThresholdPx)
	}

	return 0
}

func (c *DragController) reset() {
	if c.frameActive {
		c.frames.Cancel(c.frameID)
		c.frameActive = false
	}

	c.state = StateIdle
	c.date = ""
	c.employeeID = nil
	c.hourlyWage = 0
	c.anchorA = 0
	c.anchorB = 0
	c.lastPointerX = 0
}

func (c *DragController) framesUnavailable() bool {
	return c.frames == nil
}
