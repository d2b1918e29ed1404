package diagfmt

// PrettyOpts настраивает человекочитаемый вывод диагностик.
type PrettyOpts struct {
	// Color включает ANSI-раскраску.
	Color bool
	// Context — сколько строк исходника показывать вокруг ошибки.
	Context int
}
