package output

// RunTask announces title, runs fn and reports the outcome. The error
// returned by fn is passed through unchanged.
func RunTask(title string, fn func() error) error {
	_, err := RunTaskValue(title, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// RunTaskValue is RunTask for operations that produce a value.
func RunTaskValue[T any](title string, fn func() (T, error)) (T, error) {
	logger.Info(StyleTask.Render("[[" + title + "..."))

	v, err := fn()
	if err != nil {
		logger.Error(StyleFailed.Render("]] (FAILED " + title + ")"))
		return v, err
	}

	logger.Info(StyleTask.Render("]] (done " + title + ")"))
	return v, nil
}
