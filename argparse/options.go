package argparse

type SwitchOptions struct {
	Help      string
	Default   bool
	Negatable bool
}

type OptionOptions struct {
	Required  bool
	Help      string
	ValueHelp string
	Values    []string

	// Default is used when HasDefault is set, so an empty string can be a
	// default too.
	Default    string
	HasDefault bool
}

func (o *OptionOptions) defaultPtr() *string {
	if !o.HasDefault && o.Default == "" {
		return nil
	}

	d := o.Default
	return &d
}
