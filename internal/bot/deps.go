package bot

import (
	"log/slog"

	"github.com/Nessyi/pumpkin-management/internal/adapter"
	"github.com/Nessyi/pumpkin-management/internal/config"
	"github.com/Nessyi/pumpkin-management/internal/discord"
	"github.com/Nessyi/pumpkin-management/internal/i18n"
	"github.com/Nessyi/pumpkin-management/internal/service/acl"
	"github.com/Nessyi/pumpkin-management/internal/service/activity"
	"github.com/Nessyi/pumpkin-management/internal/service/verify"
)

// Dependencies 는 타입이다.
type Dependencies struct {
	Config         *config.Config
	Logger         *slog.Logger
	Platform       discord.Platform
	MessageAdapter *adapter.MessageAdapter
	Embeds         *adapter.EmbedBuilder
	Translator     *i18n.Translator
	Locales        *i18n.LocaleResolver
	ACL            *acl.Service
	Verify         *verify.Repository
	Activity       *activity.Logger
}
