package commands

const (
	_etc = "/usr/local/etc/com.github.uhppoted/sheets-bridge"
	_var = "/usr/local/var/com.github.uhppoted/sheets-bridge"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"

	BROWSER = "open"
)
