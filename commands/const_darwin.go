package commands

const (
	_etc = "/usr/local/etc/com.github.joshua-poirier"
	_var = "/usr/local/var/com.github.joshua-poirier"

	DEFAULT_WORKDIR     = _var + "/data-access"
	DEFAULT_CREDENTIALS = _etc + "/data-access/.google/credentials.json"
)
