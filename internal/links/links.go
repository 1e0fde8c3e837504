package links

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Link is a fixed external resource reachable from the footer.
type Link struct {
	Caption string
	Label   string
	URL     string
}

var Defaults = []Link{
	{Caption: "Redump decryption keys", Label: "Aldos Tools", URL: "https://ps3.aldostools.org/dkey.html"},
	{Caption: "PlayStation 3 redumps", Label: "Myrient", URL: "https://myrient.erista.me/"},
	{Caption: "Recommended VPN", Label: "iVPN", URL: "https://www.ivpn.net/"},
	{Caption: "Source & support", Label: "GitHub", URL: "https://github.com/tbwcjw"},
}

// Command returns the program and arguments that open url on goos. A
// non-empty browser value ($BROWSER) takes precedence.
func Command(goos, browser, url string) (string, []string) {
	if parts := strings.Fields(browser); len(parts) > 0 {
		return parts[0], append(parts[1:], url)
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		return "xdg-open", []string{url}
	}
}

// Open hands url to the system handler without waiting for it.
func Open(url string) error {
	name, args := Command(runtime.GOOS, os.Getenv("BROWSER"), url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
