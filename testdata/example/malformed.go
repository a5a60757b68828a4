package example

// <summary>Broken carries an unterminated documentation fragment
func Broken() string {
	return "oops"
}
