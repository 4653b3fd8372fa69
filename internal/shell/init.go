package shell

import (
	"io"
	"text/template"
)

// initScript is shared by bash and zsh. The hook refreshes SUNSPOT_TODAY and
// SUNSPOT_MOOD before each prompt and prefixes the prompt with the icon,
// keeping the prompt the user had when the script was sourced. Setting
// SUNSPOT_PROMPT=off keeps the variables but leaves the prompt alone.
var initScript = template.Must(template.New("init").Parse(`# sunspot shell integration ({{.Shell}})
__sunspot_prompt_base="${{.PromptVar}}"

__sunspot_prompt_hook() {
  eval "$(command sunspot status --env 2>/dev/null)"
  if [[ "${SUNSPOT_PROMPT:-on}" != "off" ]]; then
    {{.PromptVar}}="${SUNSPOT_TODAY:+$SUNSPOT_TODAY }${__sunspot_prompt_base}"
  fi
}

sunspot_prompt_info() {
  command sunspot status 2>/dev/null
}

{{.Register}}

eval "$(command sunspot completion {{.Shell}} 2>/dev/null)"
`))

type initData struct {
	Shell     string
	PromptVar string
	Register  string
}

const bashRegister = `if [[ -z "$PROMPT_COMMAND" ]]; then
  PROMPT_COMMAND="__sunspot_prompt_hook"
elif [[ "$PROMPT_COMMAND" != *__sunspot_prompt_hook* ]]; then
  PROMPT_COMMAND="__sunspot_prompt_hook;${PROMPT_COMMAND}"
fi`

const zshRegister = `autoload -Uz add-zsh-hook
add-zsh-hook precmd __sunspot_prompt_hook`

// WriteBashInit writes the bash shell integration script to the writer.
func WriteBashInit(w io.Writer) error {
	return initScript.Execute(w, initData{Shell: "bash", PromptVar: "PS1", Register: bashRegister})
}

// WriteZshInit writes the zsh shell integration script to the writer.
func WriteZshInit(w io.Writer) error {
	return initScript.Execute(w, initData{Shell: "zsh", PromptVar: "PROMPT", Register: zshRegister})
}
