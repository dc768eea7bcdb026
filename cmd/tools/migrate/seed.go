package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nessyi/pumpkin-management/internal/app"
)

type groupSpec struct {
	Name   string
	RoleID string
	Parent string
}

// permissionSpec: "command:subject:allow|deny" (subject는 그룹 이름 또는 사용자 ID)
type permissionSpec struct {
	Command string
	Subject string
	Allow   bool
}

// seedPlan: 플래그로 지정한 길드 초기 데이터
type seedPlan struct {
	Allow          []string
	Deny           []string
	Groups         []groupSpec
	RuleGroups     []permissionSpec
	UserOverwrites []permissionSpec
	Language       string
}

func parseSeedPlan(allow, deny, groups, ruleGroups, overwrites, language string) (seedPlan, error) {
	plan := seedPlan{
		Allow:    splitList(allow),
		Deny:     splitList(deny),
		Language: strings.TrimSpace(language),
	}

	for _, item := range splitList(groups) {
		parts := strings.Split(item, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
			return seedPlan{}, fmt.Errorf("invalid group %q (want name:roleID[:parent])", item)
		}
		spec := groupSpec{Name: parts[0], RoleID: parts[1]}
		if len(parts) == 3 {
			spec.Parent = parts[2]
		}
		plan.Groups = append(plan.Groups, spec)
	}

	var err error
	if plan.RuleGroups, err = parsePermissions(ruleGroups); err != nil {
		return seedPlan{}, err
	}
	if plan.UserOverwrites, err = parsePermissions(overwrites); err != nil {
		return seedPlan{}, err
	}
	return plan, nil
}

func parsePermissions(value string) ([]permissionSpec, error) {
	var out []permissionSpec
	for _, item := range splitList(value) {
		parts := strings.Split(item, ":")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid permission %q (want command:subject:allow|deny)", item)
		}
		spec := permissionSpec{Command: strings.ToLower(parts[0]), Subject: parts[1]}
		switch strings.ToLower(parts[2]) {
		case "allow":
			spec.Allow = true
		case "deny":
		default:
			return nil, fmt.Errorf("invalid permission %q: expected allow or deny", item)
		}
		out = append(out, spec)
	}
	return out, nil
}

// seed: 그룹 → 규칙 → 규칙별 그룹 → 사용자 덮어쓰기 → 언어 순서로 저장한다. 이미 있는 그룹은 건너뛴다.
func seed(ctx context.Context, stores *app.Stores, guildID string, plan seedPlan) error {
	existing, err := stores.ACL.Groups(ctx, guildID)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existing))
	for _, g := range existing {
		known[g.Name] = struct{}{}
	}
	for _, g := range plan.Groups {
		if _, ok := known[g.Name]; ok {
			continue
		}
		if _, err := stores.ACL.AddGroup(ctx, guildID, g.Name, g.Parent, g.RoleID); err != nil {
			return fmt.Errorf("add group %s: %w", g.Name, err)
		}
		known[g.Name] = struct{}{}
	}

	for _, cmd := range plan.Allow {
		if err := stores.ACL.AddRule(ctx, guildID, cmd, true); err != nil {
			return err
		}
	}
	for _, cmd := range plan.Deny {
		if err := stores.ACL.AddRule(ctx, guildID, cmd, false); err != nil {
			return err
		}
	}

	for _, rg := range plan.RuleGroups {
		if err := stores.ACL.SetRuleGroup(ctx, guildID, rg.Command, rg.Subject, rg.Allow); err != nil {
			return fmt.Errorf("set rule group %s/%s: %w", rg.Command, rg.Subject, err)
		}
	}
	for _, ow := range plan.UserOverwrites {
		if err := stores.ACL.SetUserOverwrite(ctx, guildID, ow.Command, ow.Subject, ow.Allow); err != nil {
			return fmt.Errorf("set user overwrite %s/%s: %w", ow.Command, ow.Subject, err)
		}
	}

	if plan.Language != "" {
		if err := stores.Locales.SetGuildLanguage(ctx, guildID, plan.Language); err != nil {
			return err
		}
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
