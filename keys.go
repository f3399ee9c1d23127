package keycalc

// KeyToken translates a keyboard key name, as in the key of a browser
// KeyboardEvent, to a token value for Push. Keys with no special meaning are
// returned unchanged, so digits and token values pass through.
func KeyToken(key string) string {
	switch key {
	case "Enter", "=":
		return Evaluate
	case "Escape", "Clear":
		return Clear
	case "+":
		return "add"
	case "-":
		return "sub"
	case "*", "×":
		return "mul"
	case "/", "÷":
		return "div"
	case "%":
		return "mod"
	case "Decimal", ".":
		return DecimalSeparator
	case "√":
		return "sqrt"
	default:
		return key
	}
}
