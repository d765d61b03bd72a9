package ecs

// System is one step of a frame. Systems may declare Singleton fields; the Scheduler binds them to its
// Storage on registration. Any other fields are private state that survives between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is handed to every system executed within one Scheduler.Once call.
type UpdateFrame struct {
	DeltaTime float64
	Tick      uint64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, tick uint64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
