package timeline

import (
	"math"
	"testing"
)

// fakeViewport 模拟一个宽度固定的滚动容器，
// 时间轴矩形随 scrollLeft 左移，和浏览器中的布局行为一致。
type fakeViewport struct {
	timelineLeft  float64 // scrollLeft 为 0 时时间轴的左边缘
	timelineWidth float64
	visible       Rect
	scrollLeft    float64
}

func (v *fakeViewport) TimelineRect() Rect {
	return Rect{Left: v.timelineLeft - v.scrollLeft, Width: v.timelineWidth}
}

func (v *fakeViewport) VisibleRect() Rect {
	return v.visible
}

func (v *fakeViewport) ScrollLeft() float64 {
	return v.scrollLeft
}

func (v *fakeViewport) SetScrollLeft(px float64) {
	v.scrollLeft = px
}

// fakeFrames 手动驱动动画帧，step 只执行当前已排队的回调，
// 回调中重新排队的帧留到下一次 step。
type fakeFrames struct {
	nextID   int
	pending  map[int]func()
	canceled int
}

func newFakeFrames() *fakeFrames {
	return &fakeFrames{pending: make(map[int]func())}
}

func (f *fakeFrames) Request(fn func()) int {
	f.nextID++
	f.pending[f.nextID] = fn
	return f.nextID
}

func (f *fakeFrames) Cancel(id int) {
	if _, ok := f.pending[id]; ok {
		delete(f.pending, id)
		f.canceled++
	}
}

func (f *fakeFrames) step() {
	current := f.pending
	f.pending = make(map[int]func())
	for _, fn := range current {
		fn()
	}
}

type createCall struct {
	date       string
	startTime  string
	endTime    string
	employeeID *int64
}

type createRecorder struct {
	calls []createCall
}

func (r *createRecorder) create(date, startTime, endTime string, employeeID *int64) {
	r.calls = append(r.calls, createCall{date: date, startTime: startTime, endTime: endTime, employeeID: employeeID})
}

// fullDayController 的时间轴为 1440px 宽的全天窗口，像素偏移即分钟数。
func fullDayController(onCreate CreateFunc) (*DragController, *fakeViewport, *fakeFrames) {
	viewport := &fakeViewport{timelineWidth: 1440, visible: Rect{Left: 0, Width: 800}}
	frames := newFakeFrames()
	c := NewDragController(DragConfig{
		Window:          Window{MinHour: 0, MaxHour: 24},
		EdgeThresholdPx: 60,
		MaxScrollStepPx: 24,
	}, viewport, frames, onCreate)
	return c, viewport, frames
}

func TestDragBelowMinimumSpanIsDiscarded(t *testing.T) {
	rec := &createRecorder{}
	c, _, _ := fullDayController(rec.create)

	if !c.Begin("2025-06-02", nil, 0, 100) {
		t.Fatal("Begin 应该成功")
	}
	c.Move(110)
	c.End()

	if len(rec.calls) != 0 {
		t.Fatalf("跨度不足的拖拽不应提交，实际提交了 %d 次", len(rec.calls))
	}
	if c.State() != StateIdle {
		t.Fatal("拖拽结束后应回到 Idle")
	}
}

func TestDragCommitsSnappedRangeExactlyOnce(t *testing.T) {
	rec := &createRecorder{}
	c, _, _ := fullDayController(rec.create)

	c.Begin("2025-06-02", nil, 0, 100)
	c.Move(120)
	c.End()

	if len(rec.calls) != 1 {
		t.Fatalf("应恰好提交一次，实际 %d 次", len(rec.calls))
	}
	call := rec.calls[0]
	if call.startTime != "01:45" || call.endTime != "02:00" {
		t.Fatalf("提交的时间范围 = %s~%s, want 01:45~02:00", call.startTime, call.endTime)
	}
}

func TestDragReversedAnchorsStillCommitOrdered(t *testing.T) {
	rec := &createRecorder{}
	c, _, _ := fullDayController(rec.create)

	// 从右往左拖，提交时起止时间依然有序
	c.Begin("2025-06-02", nil, 0, 600)
	c.Move(480)
	c.End()

	if len(rec.calls) != 1 {
		t.Fatalf("应恰好提交一次，实际 %d 次", len(rec.calls))
	}
	call := rec.calls[0]
	if call.startTime != "08:00" || call.endTime != "10:00" {
		t.Fatalf("提交的时间范围 = %s~%s, want 08:00~10:00", call.startTime, call.endTime)
	}
}

func TestDragCreateEndToEnd(t *testing.T) {
	// 6am~11pm 的营业时间窗口，时间轴 1020px 宽，像素偏移即窗口内分钟数。
	// 从 17:48 拖到 18:33，吸附后应提交 17:45~18:30 给员工 1。
	rec := &createRecorder{}
	viewport := &fakeViewport{timelineWidth: 1020, visible: Rect{Left: 0, Width: 1020}}
	frames := newFakeFrames()
	c := NewDragController(DragConfig{
		Window: Window{MinHour: 6, MaxHour: 23},
	}, viewport, frames, rec.create)

	employeeID := int64(1)

	c.Begin("2025-06-02", &employeeID, 18.5, 708)
	c.Move(753)
	c.End()

	if len(rec.calls) != 1 {
		t.Fatalf("应恰好提交一次，实际 %d 次", len(rec.calls))
	}
	call := rec.calls[0]
	if call.date != "2025-06-02" {
		t.Errorf("date = %q", call.date)
	}
	if call.startTime != "17:45" || call.endTime != "18:30" {
		t.Errorf("时间范围 = %s~%s, want 17:45~18:30", call.startTime, call.endTime)
	}
	if call.employeeID == nil || *call.employeeID != 1 {
		t.Errorf("employeeID = %v, want 1", call.employeeID)
	}
}

func TestDragClampsToWindowBounds(t *testing.T) {
	rec := &createRecorder{}
	viewport := &fakeViewport{timelineLeft: 100, timelineWidth: 1020, visible: Rect{Left: 0, Width: 1220}}
	frames := newFakeFrames()
	c := NewDragController(DragConfig{
		Window: Window{MinHour: 6, MaxHour: 23},
	}, viewport, frames, rec.create)

	// 指针越过时间轴左右边缘，百分比被限制在 [0, 100]
	c.Begin("2025-06-03", nil, 0, 0)
	c.Move(5000)
	c.End()

	if len(rec.calls) != 1 {
		t.Fatalf("应恰好提交一次，实际 %d 次", len(rec.calls))
	}
	call := rec.calls[0]
	if call.startTime != "06:00" || call.endTime != "23:00" {
		t.Fatalf("时间范围 = %s~%s, want 06:00~23:00", call.startTime, call.endTime)
	}
}

func TestDragIgnoredWhenLocked(t *testing.T) {
	rec := &createRecorder{}
	viewport := &fakeViewport{timelineWidth: 1440, visible: Rect{Left: 0, Width: 800}}
	c := NewDragController(DragConfig{
		Window: Window{MinHour: 0, MaxHour: 24},
		Locked: true,
	}, viewport, newFakeFrames(), rec.create)

	if c.Begin("2025-06-02", nil, 0, 100) {
		t.Fatal("已发布的排班表不应允许拖拽")
	}
}

func TestDragIgnoredWithoutCreateCallback(t *testing.T) {
	viewport := &fakeViewport{timelineWidth: 1440, visible: Rect{Left: 0, Width: 800}}
	c := NewDragController(DragConfig{
		Window: Window{MinHour: 0, MaxHour: 24},
	}, viewport, newFakeFrames(), nil)

	if c.Begin("2025-06-02", nil, 0, 100) {
		t.Fatal("没有创建回调时不应允许拖拽")
	}
}

func TestCancelDiscardsDrag(t *testing.T) {
	rec := &createRecorder{}
	c, _, frames := fullDayController(rec.create)

	c.Begin("2025-06-02", nil, 0, 100)
	c.Move(300)
	c.Cancel()

	if len(rec.calls) != 0 {
		t.Fatal("取消的拖拽不应提交")
	}
	if c.State() != StateIdle {
		t.Fatal("取消后应回到 Idle")
	}
	if len(frames.pending) != 0 {
		t.Fatal("取消后边缘滚动循环应停止")
	}
}

func TestCloseCancelsEdgeScrollLoop(t *testing.T) {
	rec := &createRecorder{}
	c, _, frames := fullDayController(rec.create)

	c.Begin("2025-06-02", nil, 0, 100)
	if len(frames.pending) != 1 {
		t.Fatalf("拖拽期间应有一个待执行帧，实际 %d 个", len(frames.pending))
	}

	c.Close()

	if len(frames.pending) != 0 {
		t.Fatal("Close 后不应遗留待执行帧")
	}
	if frames.canceled != 1 {
		t.Fatalf("应取消一个帧，实际取消 %d 个", frames.canceled)
	}
}

func TestScrollAdjustmentBounds(t *testing.T) {
	c, _, _ := fullDayController(func(string, string, string, *int64) {})

	// 阈值之外为 0
	if got := c.ScrollAdjustment(400); got != 0 {
		t.Fatalf("中间位置不应滚动，得到 %v", got)
	}
	if got := c.ScrollAdjustment(740); got != 0 {
		t.Fatalf("恰好在阈值处不应滚动，得到 %v", got)
	}

	// 靠近右边缘时距离越近步长越大
	prev := 0.0
	for _, pointerX := range []float64{750, 770, 790, 800} {
		step := c.ScrollAdjustment(pointerX)
		if step <= prev {
			t.Fatalf("pointerX=%v 时步长 %v 未随贴近边缘增大（上一个 %v）", pointerX, step, prev)
		}
		prev = step
	}

	// 左边缘为负方向
	if got := c.ScrollAdjustment(10); got >= 0 {
		t.Fatalf("左边缘步长应为负，得到 %v", got)
	}
	if c.ScrollAdjustment(10) != -c.ScrollAdjustment(790) {
		t.Fatal("左右边缘在同样距离下步长应对称")
	}
}

func TestEdgeScrollAdvancesAndRemapsAnchor(t *testing.T) {
	rec := &createRecorder{}
	c, viewport, frames := fullDayController(rec.create)

	c.Begin("2025-06-02", nil, 0, 400)
	c.Move(790) // 距右缘 10px，每帧步长 24*(1-10/60)=20

	frames.step()
	if viewport.scrollLeft != 20 {
		t.Fatalf("第一帧后 scrollLeft = %v, want 20", viewport.scrollLeft)
	}
	frames.step()
	if viewport.scrollLeft != 40 {
		t.Fatalf("第二帧后 scrollLeft = %v, want 40", viewport.scrollLeft)
	}

	// 滚动使像素到时间的映射右移，锚点必须跟着重算：
	// 时间轴左缘现在位于 -40px，指针 790px 对应第 830 分钟，吸附到 825
	c.End()
	if len(rec.calls) != 1 {
		t.Fatalf("应恰好提交一次，实际 %d 次", len(rec.calls))
	}
	if got := rec.calls[0].endTime; got != "13:45" {
		t.Fatalf("滚动后提交的结束时间 = %s, want 13:45", got)
	}
	if len(frames.pending) != 0 {
		t.Fatal("提交后边缘滚动循环应停止")
	}
}

func TestPreviewDuringDrag(t *testing.T) {
	rec := &createRecorder{}
	viewport := &fakeViewport{timelineWidth: 1020, visible: Rect{Left: 0, Width: 1020}}
	c := NewDragController(DragConfig{
		Window: Window{MinHour: 6, MaxHour: 23},
	}, viewport, newFakeFrames(), rec.create)

	if _, ok := c.Preview(); ok {
		t.Fatal("Idle 状态下不应有预览")
	}

	employeeID := int64(7)
	c.Begin("2025-06-02", &employeeID, 20, 708)
	c.Move(753)

	preview, ok := c.Preview()
	if !ok {
		t.Fatal("拖拽中应有预览")
	}
	if preview.Label != "5:45p - 6:30p" {
		t.Errorf("Label = %q", preview.Label)
	}
	if preview.Hours != 0.75 {
		t.Errorf("Hours = %v, want 0.75", preview.Hours)
	}
	if preview.Cost != 15 {
		t.Errorf("Cost = %v, want 15", preview.Cost)
	}

	wantLeft := (1065.0 - 360.0) / 1020.0 * 100
	wantWidth := 45.0 / 1020.0 * 100
	if math.Abs(preview.LeftPercent-wantLeft) > 1e-9 {
		t.Errorf("LeftPercent = %v, want %v", preview.LeftPercent, wantLeft)
	}
	if math.Abs(preview.WidthPercent-wantWidth) > 1e-9 {
		t.Errorf("WidthPercent = %v, want %v", preview.WidthPercent, wantWidth)
	}
}
