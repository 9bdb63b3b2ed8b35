package casement

import "github.com/hajimehoshi/ebiten/v2"

// injectedInput is one synthetic pointer sample or key press.
type injectedInput struct {
	sample PointerSample
	key    ebiten.Key
	isKey  bool
}

// InjectMove queues a pointer move to the screen point (x, y). Injected
// inputs are fed to the state machine one per frame, ahead of real input.
func (d *Dispatcher) InjectMove(x, y int) {
	d.inject(PointerSample{X: x, Y: y, Transition: TransitionMove})
}

// InjectPress queues a left button press at (x, y).
func (d *Dispatcher) InjectPress(x, y int) {
	d.inject(PointerSample{X: x, Y: y, Transition: TransitionLeftDown})
}

// InjectRelease queues a left button release at (x, y).
func (d *Dispatcher) InjectRelease(x, y int) {
	d.inject(PointerSample{X: x, Y: y, Transition: TransitionLeftUp})
}

// InjectRightPress queues a right button press at (x, y).
func (d *Dispatcher) InjectRightPress(x, y int) {
	d.inject(PointerSample{X: x, Y: y, Transition: TransitionRightDown})
}

// InjectRightRelease queues a right button release at (x, y).
func (d *Dispatcher) InjectRightRelease(x, y int) {
	d.inject(PointerSample{X: x, Y: y, Transition: TransitionRightUp})
}

// InjectClick queues a left press and release at (x, y). Consumes two
// frames.
func (d *Dispatcher) InjectClick(x, y int) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectRightClick queues a right press and release at (x, y).
func (d *Dispatcher) InjectRightClick(x, y int) {
	d.InjectRightPress(x, y)
	d.InjectRightRelease(x, y)
}

// InjectDrag queues a left-button drag: a press at (fromX, fromY), moves
// interpolated over frames-2 frames and a release at (toX, toY). The whole
// sequence takes frames frames, minimum 2.
func (d *Dispatcher) InjectDrag(fromX, fromY, toX, toY, frames int) {
	d.injectDrag(fromX, fromY, toX, toY, frames, TransitionLeftDown, TransitionLeftUp)
}

// InjectRightDrag is InjectDrag with the right button.
func (d *Dispatcher) InjectRightDrag(fromX, fromY, toX, toY, frames int) {
	d.injectDrag(fromX, fromY, toX, toY, frames, TransitionRightDown, TransitionRightUp)
}

func (d *Dispatcher) injectDrag(fromX, fromY, toX, toY, frames int, down, up Transition) {
	if frames < 2 {
		frames = 2
	}
	d.inject(PointerSample{X: fromX, Y: fromY, Transition: down})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		d.InjectMove(x, y)
	}
	d.inject(PointerSample{X: toX, Y: toY, Transition: up})
}

// InjectKey queues a key press.
func (d *Dispatcher) InjectKey(k ebiten.Key) {
	d.injectQueue = append(d.injectQueue, injectedInput{key: k, isKey: true})
}

// InjectPending returns the number of injected inputs not yet consumed.
func (d *Dispatcher) InjectPending() int { return len(d.injectQueue) }

func (d *Dispatcher) inject(s PointerSample) {
	d.injectQueue = append(d.injectQueue, injectedInput{sample: s})
}

// processInjected moves one injected input into the live queues.
func (d *Dispatcher) processInjected() {
	if len(d.injectQueue) == 0 {
		return
	}
	in := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]
	if in.isKey {
		d.keys.Press(in.key)
		return
	}
	d.queue.Push(in.sample)
}
