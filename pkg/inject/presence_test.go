package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodDefined(t *testing.T) {
	text := `class CLI < Thor
  desc 'deploy_all', 'x'
  def deploy_all(*)
  end

    def status(*)
    end
end
`
	assert.True(t, MethodDefined(text, "deploy_all"))
	assert.True(t, MethodDefined(text, "status"))
	assert.False(t, MethodDefined(text, "deploy"), "prefix of another method")
	assert.False(t, MethodDefined(text, "desc"))
	assert.False(t, MethodDefined("", "deploy"))
}

func TestRequired(t *testing.T) {
	text := `    require_relative 'commands/config'
    require_relative "commands/server/start"
`
	assert.True(t, Required(text, "commands/config"))
	assert.True(t, Required(text, "commands/server/start"))
	assert.False(t, Required(text, "commands/server"))
	assert.False(t, Required(text, "commands/conf"))
}
