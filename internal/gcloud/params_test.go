package gcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	cmd := "gcloud compute instances attach-disk [INSTANCE_NAME] --disk=[DISK_NAME] --zone=[ZONE]"
	assert.Equal(t, []string{"INSTANCE_NAME", "DISK_NAME", "ZONE"}, Placeholders(cmd))
}

func TestPlaceholdersDeduplicates(t *testing.T) {
	cmd := "gcloud compute instances create [NAME] --zone=[ZONE] && gcloud compute disks create [NAME]-disk --zone=[ZONE]"
	assert.Equal(t, []string{"NAME", "ZONE"}, Placeholders(cmd))
}

func TestPlaceholdersNone(t *testing.T) {
	assert.Empty(t, Placeholders("gcloud storage buckets list"))
}

func TestFillReplacesAllOccurrences(t *testing.T) {
	cmd := "gcloud compute instances create [NAME] --zone=[ZONE] --boot-disk=[NAME]-boot"
	filled := Fill(cmd, map[string]string{"NAME": "web-1", "ZONE": "us-central1-a"})
	assert.Equal(t, "gcloud compute instances create web-1 --zone=us-central1-a --boot-disk=web-1-boot", filled)
}

func TestFillLeavesUnansweredPlaceholders(t *testing.T) {
	cmd := "gcloud pubsub topics create [TOPIC_NAME] --project=[PROJECT_ID]"
	filled := Fill(cmd, map[string]string{"TOPIC_NAME": "events", "PROJECT_ID": ""})
	assert.Equal(t, "gcloud pubsub topics create events --project=[PROJECT_ID]", filled)
}

func TestParseParamInfoFromJSONFence(t *testing.T) {
	response := "Here you go:\n```json\n{\"TOPIC_NAME\": {\"description\": \"Pub/Sub topic name\", \"examples\": [\"events\", \"orders\"], \"required\": true, \"default\": \"\"}}\n```"

	info, err := ParseParamInfo(response)
	require.NoError(t, err)
	require.Contains(t, info, "TOPIC_NAME")
	assert.Equal(t, "Pub/Sub topic name", info["TOPIC_NAME"].Description)
	assert.Equal(t, []string{"events", "orders"}, info["TOPIC_NAME"].Examples)
	assert.True(t, info["TOPIC_NAME"].Required)
}

func TestParseParamInfoFromBareFence(t *testing.T) {
	response := "```\n{\"ZONE\": {\"description\": \"Compute zone\"}}\n```"
	info, err := ParseParamInfo(response)
	require.NoError(t, err)
	assert.Equal(t, "Compute zone", info["ZONE"].Description)
}

func TestParseParamInfoBareJSON(t *testing.T) {
	info, err := ParseParamInfo(`{"PROJECT_ID": {"description": "GCP project", "required": true}}`)
	require.NoError(t, err)
	assert.True(t, info["PROJECT_ID"].Required)
}

func TestParseParamInfoInvalid(t *testing.T) {
	_, err := ParseParamInfo("not json at all")
	assert.Error(t, err)
}
