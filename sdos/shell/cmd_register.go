package shell

func (s *Service) initRegistry() error {
	r := newRegistry()

	for _, register := range []func(r *registry) error{
		registerCoreCommands,
		registerFSCommands,
		registerSysCommands,
	} {
		if err := register(r); err != nil {
			return err
		}
	}
	if err := r.check(Commands); err != nil {
		return err
	}

	s.reg = r
	return nil
}

func registerAll(r *registry, cmds []command) error {
	for _, cmd := range cmds {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}
