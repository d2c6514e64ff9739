package sigui

// Dispatcher holds a context's two FIFO queues: events waiting to be
// broadcast to modules, and commands waiting to be executed.
//
// Each drain consumes exactly the entries present when it starts. Entries
// queued while a drain is running (a handler queueing an event, or a command
// queueing another command) wait for the next drain of that queue.
type Dispatcher struct {
	ctx      *Context
	events   []*EventEnvelope
	commands []*Command
}

func newDispatcher(ctx *Context, capacity int) *Dispatcher {
	return &Dispatcher{
		ctx:      ctx,
		events:   make([]*EventEnvelope, 0, capacity),
		commands: make([]*Command, 0, capacity),
	}
}

// QueueEvent appends an event to the event queue. A nil envelope, or a
// closed context, is ignored.
func (d *Dispatcher) QueueEvent(ev *EventEnvelope) {
	if d == nil || ev == nil || d.ctx.closed {
		return
	}
	d.events = append(d.events, ev)
	d.ctx.logger.Debug("queued event", "event", ev.Event, "pending", len(d.events))
}

// DispatchEvents delivers every queued event, in queue order, to every
// enabled module with a handler, in registry order. The queue is empty on
// return apart from events queued by the handlers themselves. If a handler
// closes the context, delivery stops there.
func (d *Dispatcher) DispatchEvents() {
	if d == nil || len(d.events) == 0 {
		return
	}

	queue := d.events
	d.events = nil
	modules := d.ctx.modules

	for i, ev := range queue {
		queue[i] = nil
		for _, m := range modules {
			if d.ctx.closed {
				clear(queue)
				return
			}
			if !m.enabled || m.handler == nil {
				continue
			}
			d.ctx.logger.Debug("dispatch event", "module", m.name, "event", ev.Event)
			m.handler(d.ctx, m, ev)
		}
	}

	d.events = recycle(d.events, queue)
}

// QueueCommand appends a command to the command queue. A nil command, or a
// closed context, is ignored.
func (d *Dispatcher) QueueCommand(cmd *Command) {
	if d == nil || cmd == nil || d.ctx.closed {
		return
	}
	d.commands = append(d.commands, cmd)
	d.ctx.logger.Debug("queued command", "command", cmd.name, "target", cmd.target, "pending", len(d.commands))
}

// DispatchCommands executes every queued command once, in queue order, with
// its own target. Commands without an execute callback are dropped. If a
// command closes the context, the rest are dropped too.
func (d *Dispatcher) DispatchCommands() {
	if d == nil || len(d.commands) == 0 {
		return
	}

	queue := d.commands
	d.commands = nil

	for i, cmd := range queue {
		if d.ctx.closed {
			clear(queue)
			return
		}
		if cmd.execute != nil {
			d.ctx.logger.Debug("execute command", "command", cmd.name, "target", cmd.target)
			cmd.execute(d.ctx, cmd.target)
		} else {
			d.ctx.logger.Debug("drop command without execute", "command", cmd.name)
		}
		queue[i] = nil
	}

	d.commands = recycle(d.commands, queue)
}

// PendingEvents returns the number of queued events.
func (d *Dispatcher) PendingEvents() int {
	if d == nil {
		return 0
	}
	return len(d.events)
}

// PendingCommands returns the number of queued commands.
func (d *Dispatcher) PendingCommands() int {
	if d == nil {
		return 0
	}
	return len(d.commands)
}

// discard drops everything still queued and returns how much was dropped.
func (d *Dispatcher) discard() (events, commands int) {
	events, commands = len(d.events), len(d.commands)
	clear(d.events)
	clear(d.commands)
	d.events = nil
	d.commands = nil
	return events, commands
}

// recycle returns the queue to use after a drain. If nothing was queued
// during the drain, the drained (now cleared) backing array is reused.
func recycle[T any](current, drained []T) []T {
	if len(current) > 0 {
		return current
	}
	return drained[:0]
}
