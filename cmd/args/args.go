package args

type args struct {
	Grammar string

	ParseCmd struct {
		Output  string
		Command string
	}

	InitCmd struct {
		Name string
	}

	Debug          bool
	NonInteractive bool
}

var Args = &args{}
