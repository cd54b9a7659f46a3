package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForCommandContainsRequestAndInstructions(t *testing.T) {
	p := ForCommand("list all storage buckets")

	assert.Contains(t, p, "list all storage buckets")
	assert.Contains(t, p, "gcloud")
	assert.Contains(t, p, "ONLY the appropriate gcloud command(s)")
}

func TestForCommandIsDeterministic(t *testing.T) {
	a := ForCommand("create a vm")
	b := ForCommand("create a vm")
	assert.Equal(t, a, b)
}

func TestForParametersContainsCommand(t *testing.T) {
	p := ForParameters("gcloud pubsub topics create [TOPIC_NAME]")

	assert.Contains(t, p, "gcloud pubsub topics create [TOPIC_NAME]")
	assert.Contains(t, p, "square brackets")
	assert.True(t, strings.HasSuffix(p, "Parameter JSON:"))
}

func TestSplitCommandsSingle(t *testing.T) {
	cmds := SplitCommands("gcloud storage buckets list")
	assert.Equal(t, []string{"gcloud storage buckets list"}, cmds)
}

func TestSplitCommandsMultipleDropsBlanks(t *testing.T) {
	response := "gcloud compute instances create [INSTANCE_NAME] --zone=[ZONE]\n\n  gcloud compute disks create [DISK_NAME] --zone=[ZONE]  \n"
	cmds := SplitCommands(response)
	assert.Equal(t, []string{
		"gcloud compute instances create [INSTANCE_NAME] --zone=[ZONE]",
		"gcloud compute disks create [DISK_NAME] --zone=[ZONE]",
	}, cmds)
}

func TestSplitCommandsRefusalPassesThrough(t *testing.T) {
	cmds := SplitCommands("Request cannot be fulfilled.")
	assert.Equal(t, []string{Refusal}, cmds)

	// Refusal embedded in extra prose still collapses to the sentinel.
	cmds = SplitCommands("Sorry. Request cannot be fulfilled.\n")
	assert.Equal(t, []string{Refusal}, cmds)
}

func TestSplitCommandsEmpty(t *testing.T) {
	assert.Empty(t, SplitCommands(""))
	assert.Empty(t, SplitCommands("\n\n"))
}
