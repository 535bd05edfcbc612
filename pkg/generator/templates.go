package generator

var templates = map[string]string{
	CommandTemplate:     commandTemplate,
	ParentTemplate:      parentTemplate,
	SubcommandTemplate:  subcommandTemplate,
	DispatchTemplate:    dispatchTemplate,
	RegisterTemplate:    registerTemplate,
	SubdispatchTemplate: subdispatchTemplate,
}

// Command file: lib/<app>/commands/<cmd>.rb
var commandTemplate = `{{- $mods := .CommandModules }}{{ $i := indent (len $mods) -}}
# frozen_string_literal: true

require_relative '{{.CmdFilePath}}'

{{open $mods}}{{$i}}class {{.CommandClass}} < {{.AppConstant}}::Cmd
{{$i}}  def initialize(options)
{{$i}}    @options = options
{{$i}}  end

{{$i}}  def execute(input: $stdin, output: $stdout)
{{$i}}    # Command logic goes here ...
{{$i}}    output.puts "OK"
{{$i}}  end
{{$i}}end
{{close (len $mods)}}`

// Command with subcommands: lib/<app>/commands/<cmd>.rb
var parentTemplate = `{{- $mods := .CommandModules }}{{ $i := indent (len $mods) -}}
# frozen_string_literal: true

require 'thor'

{{open $mods}}{{$i}}class {{.CommandClass}} < Thor

{{$i}}  namespace :{{.CmdUnderscored}}

{{$i}}end
{{close (len $mods)}}`

// Subcommand file: lib/<app>/commands/<cmd>/<subcmd>.rb
var subcommandTemplate = `{{- $mods := .SubcommandModules }}{{ $i := indent (len $mods) -}}
# frozen_string_literal: true

require_relative '{{.SubcmdFilePath}}'

{{open $mods}}{{$i}}class {{.SubcommandClass}} < {{.AppConstant}}::Cmd
{{$i}}  def initialize(options)
{{$i}}    @options = options
{{$i}}  end

{{$i}}  def execute(input: $stdin, output: $stdout)
{{$i}}    # Command logic goes here ...
{{$i}}    output.puts "OK"
{{$i}}  end
{{$i}}end
{{close (len $mods)}}`

// Injected into cli.rb for a plain command.
var dispatchTemplate = `{{.AppIndent}}  desc '{{.CmdUnderscored}}', {{squote .Description}}
{{.AppIndent}}  method_option :help, aliases: '-h', type: :boolean,
{{.AppIndent}}                       desc: 'Display usage information'
{{.AppIndent}}  def {{.CmdUnderscored}}(*)
{{.AppIndent}}    if options[:help]
{{.AppIndent}}      invoke :help, ['{{.CmdUnderscored}}']
{{.AppIndent}}    else
{{.AppIndent}}      require_relative 'commands/{{.CmdPath}}'
{{.AppIndent}}      {{.CmdObject}}.new(options).execute
{{.AppIndent}}    end
{{.AppIndent}}  end
`

// Injected into cli.rb for a command with subcommands.
var registerTemplate = `{{.AppIndent}}  require_relative 'commands/{{.CmdPath}}'
{{.AppIndent}}  register {{.CmdObject}}, '{{.CmdUnderscored}}', '{{.CmdUnderscored}} [SUBCOMMAND]', {{squote .Description}}
`

// Injected into the parent command file for a subcommand.
var subdispatchTemplate = `{{.AppIndent}}{{.CmdIndent}}  desc '{{.SubcmdUnderscored}}', {{squote .Description}}
{{.AppIndent}}{{.CmdIndent}}  method_option :help, aliases: '-h', type: :boolean,
{{.AppIndent}}{{.CmdIndent}}                       desc: 'Display usage information'
{{.AppIndent}}{{.CmdIndent}}  def {{.SubcmdUnderscored}}(*)
{{.AppIndent}}{{.CmdIndent}}    if options[:help]
{{.AppIndent}}{{.CmdIndent}}      invoke :help, ['{{.SubcmdUnderscored}}']
{{.AppIndent}}{{.CmdIndent}}    else
{{.AppIndent}}{{.CmdIndent}}      require_relative '{{.CmdBasename}}/{{.SubcmdPath}}'
{{.AppIndent}}{{.CmdIndent}}      {{.SubcmdObject}}.new(options).execute
{{.AppIndent}}{{.CmdIndent}}    end
{{.AppIndent}}{{.CmdIndent}}  end
`
