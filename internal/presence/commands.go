package presence

// Command is a message for the reporter goroutine.
type Command interface {
	presenceCommand()
}

// StartCmd connects to the presence service.
type StartCmd struct{}

func (StartCmd) presenceCommand() {}

// UpdateCmd publishes a new activity.
type UpdateCmd struct {
	Activity Activity
}

func (UpdateCmd) presenceCommand() {}

// CloseCmd clears the activity, disconnects, and stops the goroutine.
type CloseCmd struct{}

func (CloseCmd) presenceCommand() {}
