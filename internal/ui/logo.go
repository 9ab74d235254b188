package ui

import "strings"

const logoArt = `
  ____    _    _   _ _____ ______   __
 / ___|  / \  | \ | |_   _|  _ \ \ / /
| |  _  / _ \ |  \| | | | | |_) \ V /
| |_| |/ ___ \| |\  | | | |  _ < | |
 \____/_/   \_\_| \_| |_| |_| \_\|_|
`

// renderLogo returns the styled launcher wordmark.
func renderLogo(styles Styles) string {
	return styles.Logo.Render(strings.Trim(logoArt, "\n"))
}
