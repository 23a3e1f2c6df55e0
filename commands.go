package ballpit

// Commands is handed to modules at install time and to systems that ask for it.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

func (cmd *Commands) UseStage(stage Stage, where stagePositionBuilder) *Commands {
	cmd.app.UseStage(stage, where)
	return cmd
}

// Exit stops App.Run after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.exiting = true
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
