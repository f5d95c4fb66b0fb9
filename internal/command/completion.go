// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/fatool/internal/meta"
)

const bashCompletionScript = `# bash completion for fatool
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_fatool()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "entropy strings comparebytes comparetext comparelines comparelinescontext comparebyteshexdump comparejson searchstring searchstringnobreak metadata hash shell completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --output -o --pager -p --sort -s --titles -t --schema"
    local compare="$common --exit-code -x"

    case "$cmd" in
        entropy)
            local opts="$common --blocks -b --filter -f --histogram"
            ;;
        strings)
            local opts="$common --filter -f --min -m"
            ;;
        comparelinescontext)
            local opts="$compare --context -C"
            ;;
        comparebyteshexdump)
            local opts="$compare --diff-only -d"
            ;;
        comparejson)
            local opts="$compare --path --filter -f"
            ;;
        compare*|searchstring*)
            local opts="$compare"
            ;;
        metadata)
            local opts="$common --text"
            ;;
        shell)
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Positional arguments are files.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -o filenames -F _fatool fatool
`

const zshCompletionScript = `#compdef fatool

_fatool() {
  local -a cmds
  cmds=(
    'entropy:Shannon entropy of a file'
    'strings:extract printable strings'
    'comparebytes:compare two files byte by byte'
    'comparetext:compare two text files character by character'
    'comparelines:compare two text files line by line'
    'comparelinescontext:compare lines with surrounding context'
    'comparebyteshexdump:side by side hex dump comparison'
    'comparejson:compare two JSON documents structurally'
    'searchstring:find the first line containing a string'
    'searchstringnobreak:find every line containing a string'
    'metadata:file metadata'
    'hash:file digests'
    'shell:interactive console'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[highlight differences]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-p --pager)'{-p,--pager}'[page text output]'
  '(-s --sort)'{-s,--sort}'[sort columns]:columns'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--schema[list structured output fields]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'fatool commands' cmds
    return
  fi

  case $words[2] in
    entropy)
      _arguments $common '(-b --blocks)'{-b,--blocks}'[block size]:bytes' '(-f --filter)'{-f,--filter}'[block filter]:expr' '--histogram[byte histogram]' '1:file:_files'
      ;;
    strings)
      _arguments $common '(-f --filter)'{-f,--filter}'[run filter]:expr' '(-m --min)'{-m,--min}'[minimum length]:length' '1:file:_files' '2::min:'
      ;;
    comparelinescontext)
      _arguments $common '(-x --exit-code)'{-x,--exit-code}'[exit 1 on differences]' '(-C --context)'{-C,--context}'[context lines]:lines' '1:file1:_files' '2:file2:_files' '3::context:'
      ;;
    compare*)
      _arguments $common '(-x --exit-code)'{-x,--exit-code}'[exit 1 on differences]' '1:file1:_files' '2:file2:_files'
      ;;
    searchstring*)
      _arguments $common '(-x --exit-code)'{-x,--exit-code}'[exit 1 when not found]' '1:file:_files' '2:string:'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    shell)
      ;;
    *)
      _arguments $common '1:file:_files'
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _fatool fatool
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(cmd.Root().ErrWriter, "usage: fatool completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "fatool completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
